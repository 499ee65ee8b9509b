package main

import (
	"fmt"
	"time"

	"github.com/inancgumus/screen"
)

type ReadCmd struct {
	Loop     bool          `optional help:"Keep reading and redraw the value."`
	Interval time.Duration `optional default:"1s" help:"Delay between readings in loop mode."`
}

func (r *ReadCmd) Run(c *Context) error {
	for {
		temp, err := c.session.Temperature()
		if err != nil {
			return err
		}

		if r.Loop {
			screen.Clear()
			screen.MoveTopLeft()
		}
		fmt.Println(temp)

		if !r.Loop {
			return nil
		}
		time.Sleep(r.Interval)
	}
}
