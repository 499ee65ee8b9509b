package main

import "fmt"

type InfoCmd struct {
}

func (i *InfoCmd) Run(c *Context) error {
	info := c.session.DeviceInfo()

	fmt.Printf("Family      %s (0x%04x)\n", info.Type, uint16(info.Type))
	fmt.Printf("Calibration %3d %3d\n", info.Calibration[0][0], info.Calibration[0][1])
	fmt.Printf("            %3d %3d\n", info.Calibration[1][0], info.Calibration[1][1])
	fmt.Printf("Status      0x%02x\n", info.Status)

	return nil
}

type ResetCmd struct {
}

func (r *ResetCmd) Run(c *Context) error {
	return c.session.Reset()
}
