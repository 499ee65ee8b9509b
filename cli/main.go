package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/relavak/temper-tools/temperhal"
	"github.com/relavak/temper-tools/usbdev"
)

type Context struct {
	dev     usbdev.Device
	session *temperhal.Session
	log     *logrus.Logger
}

var CLI struct {
	VID      int    `optional type:"hex" help:"The USB Vendor ID." default:1130`
	PID      int    `optional type:"hex" help:"The USB Product ID." default:660c`
	RawPath  string `optional help:"Open this hidraw node instead of going through libusb."`
	LogLevel int    `optional help:"Higher values give more output."`

	Read  ReadCmd  `cmd default:"1" help:"Read the temperature and print it."`
	Info  InfoCmd  `cmd help:"Show the detected device family and calibration data."`
	Reset ResetCmd `cmd help:"Issue the calibration reset command and exit."`
	Dump  DumpCmd  `cmd help:"Hexdump the raw sensor response."`

	ListDev ListHIDCmd `cmd help:"List devices."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.NamedMapper("hex", hexMapper{}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	log := logrus.New()
	if CLI.LogLevel > 0 {
		log.SetLevel(logrus.DebugLevel)
	}

	c := &Context{log: log}
	if ctx.Command() != "list-dev" {
		dev, err := OpenDevice()
		if err != nil {
			log.Fatalf("Failed to open device: %v", err)
		}

		config := temperhal.Config{
			LogFunc: func(level int, format string, param ...interface{}) {
				if level > CLI.LogLevel {
					return
				}
				log.Debugf("HAL(%d): %s", level, fmt.Sprintf(format, param...))
			},
		}

		session, err := temperhal.New(dev, config)
		if err != nil {
			dev.Close()
			log.Fatalf("Failed to initialize device: %v", err)
		}

		c.dev = dev
		c.session = session
	}

	runErr := ctx.Run(c)

	// The session close reattaches kernel drivers, so it must happen even
	// when the command failed, before the fatal exit below.
	if c.session != nil {
		c.session.Close()
	}

	ctx.FatalIfErrorf(runErr)
}
