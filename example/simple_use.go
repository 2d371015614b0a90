package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/now-its-dark/qxgedit/internal/logger"
	"github.com/now-its-dark/qxgedit/sdk/contracts"
	"github.com/now-its-dark/qxgedit/sdk/midi"
	"github.com/now-its-dark/qxgedit/sdk/xg"
)

func main() {
	log := logger.NewZapLogger()

	device := midi.NewDevice(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithClientName("qxgedit-example"),
	)
	defer device.Close()

	inputs := device.Inputs()
	outputs := device.Outputs()
	fmt.Println("MIDI inputs:", inputs)
	fmt.Println("MIDI outputs:", outputs)

	if !device.ConnectInputs(inputs) {
		fmt.Println("no MIDI input connected; device edits will not be received")
	}
	if !device.ConnectOutputs(outputs) {
		fmt.Println("no MIDI output connected; local edits will not be sent")
	}

	// Incoming RPN/NRPN and Parameter Change traffic updates the model;
	// watched parameters are sent back out when edited locally.
	master := xg.NewMasterMap()
	synchronizer := xg.NewSynchronizer(device, master, 0, log)
	synchronizer.Start()

	volume, _ := master.FindParam(0x08, 0x00, 0x0b)
	synchronizer.Watch(volume)
	volume.SetValue(0x60, nil)
	fmt.Printf("%s = %s\n", volume.Label(), volume.Text())

	fmt.Println("Editing... press Ctrl+C to exit.")
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	device.Close()
	synchronizer.Close()
}
