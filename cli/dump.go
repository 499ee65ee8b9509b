package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/inancgumus/screen"
)

type DumpCmd struct {
	Loop int `optional help:"0=Perform once, 1=Mark changes since start, 2=Mark changes since previous iteration."`
}

func (d *DumpCmd) Run(c *Context) error {
	if d.Loop < 0 || d.Loop > 2 {
		return errors.New("Loop flag out of range")
	}

	var oldBuf []byte
	var mark []bool
	for {
		startTime := time.Now()

		buf, err := c.session.RawReading()
		if err != nil {
			return fmt.Errorf("Read error: %s", err.Error())
		}
		if d.Loop == 2 || mark == nil {
			mark = make([]bool, len(buf))
		}

		if d.Loop != 0 {
			screen.Clear()
			screen.MoveTopLeft()
			if oldBuf != nil {
				for i, m := range oldBuf {
					if m != buf[i] {
						mark[i] = true
					}
				}
			}
		}
		fmt.Println(hexdump(0, buf, mark))

		oldBuf = buf

		if d.Loop == 0 {
			break
		}
		elapsed := time.Now().Sub(startTime)
		td := 500 * time.Millisecond
		if elapsed < td {
			time.Sleep(td - elapsed)
		}
	}

	return nil
}
