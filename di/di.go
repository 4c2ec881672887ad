package di

import (
	"go.uber.org/dig"
)

type (
	Container = dig.Container
	Function  = interface{}
	In        = dig.In
	Out       = dig.Out
)

var (
	Default = New()
)

func New() *Container { return dig.New() }

func Provide(c *Container, fns ...Function) error {
	for _, fn := range fns {
		err := c.Provide(fn)
		if err != nil {
			return err
		}
	}
	return nil
}

func MustProvide(c *Container, fns ...Function) {
	err := Provide(c, fns...)
	if err != nil {
		panic(err)
	}
}

func Invoke(c *Container, fn Function) error {
	return c.Invoke(fn)
}

func MustInvoke(c *Container, fn Function) {
	err := Invoke(c, fn)
	if err != nil {
		panic(err)
	}
}
