//go:build tinygo

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/ajanata/progbar"
)

const (
	sdaPin    = machine.GPIO0
	sclPin    = machine.GPIO1
	resetPin  = machine.GPIO4
	buttonPin = machine.GPIO5

	displayAddress = 0x3C
)

func main() {
	blink()
	resetPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	buttonPin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})

	err := machine.I2C0.Configure(machine.I2CConfig{
		SCL:       sclPin,
		SDA:       sdaPin,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		earlyPanic(err)
	}
	blink()

	progbar.PulseReset(resetPin, progbar.DisplayResetHold, time.Sleep)

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: displayAddress, VccState: ssd1306.SWITCHCAPVCC})
	dev.ClearBuffer()
	dev.ClearDisplay()
	blink()

	d, err := progbar.New(progbar.DefaultConfig(), &dev, buttonPin, machine.LED)
	if err != nil {
		earlyPanic(err)
	}
	// a failed bus transfer leaves the panel in an unknown state, so start over
	d.SetFatalHandler(watchdogReset)
	err = d.Init()
	if err != nil {
		earlyPanic(err)
	}

	d.Run()
}

func watchdogReset(err error) {
	println("resetting:", err.Error())
	_ = machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 1})
	_ = machine.Watchdog.Start()
	for {
	}
}

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

func earlyPanic(err error) {
	for {
		println(err.Error())
		blink()
	}
}
