package main

import (
	"fmt"

	"github.com/sstallion/go-hid"
)

type ListHIDCmd struct {
	All bool `optional help:"List every HID device, not only the configured VID/PID."`
}

func (l *ListHIDCmd) Run(c *Context) error {
	hid.Init()
	defer hid.Exit()

	vid, pid := uint16(CLI.VID), uint16(CLI.PID)
	if l.All {
		vid, pid = 0, 0
	}

	return hid.Enumerate(vid, pid, func(info *hid.DeviceInfo) error {
		fmt.Printf("%s: ID %04x:%04x %s %s\n",
			info.Path, info.VendorID, info.ProductID, info.MfrStr, info.ProductStr)
		fmt.Printf("\tSerialNbr    %s\n", info.SerialNbr)
		fmt.Printf("\tReleaseNbr   %x.%x\n", info.ReleaseNbr>>8, info.ReleaseNbr&0xff)
		fmt.Printf("\tInterfaceNbr %d\n", info.InterfaceNbr)
		fmt.Println()

		return nil
	})
}
