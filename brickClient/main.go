//go:build linux

// Command brickClient plays a remote game in the terminal over the /watch
// websocket. Keys: a/d move the paddle, q quits.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/brickbreaker/utils"
	"golang.org/x/net/websocket"
	"golang.org/x/sys/unix"
)

type DirectionMessage struct {
	Direction string `json:"direction"`
}

func setRawMode(fileDescriptor uintptr) (*unix.Termios, error) {
	terminalSettings, err := unix.IoctlGetTermios(int(fileDescriptor), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	savedTerminalSettings := *terminalSettings
	terminalSettings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	terminalSettings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	terminalSettings.Cflag &^= unix.CSIZE | unix.PARENB
	terminalSettings.Cflag |= unix.CS8
	terminalSettings.Oflag |= unix.OPOST | unix.ONLCR

	if err := unix.IoctlSetTermios(int(fileDescriptor), unix.TCSETS, terminalSettings); err != nil {
		return nil, err
	}
	return &savedTerminalSettings, nil
}

func restoreTerminal(saved *unix.Termios) {
	_ = unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, saved)
}

// keyToDirection maps a raw key byte to a direction message. ok is false for
// keys that do not move the paddle.
func keyToDirection(key byte) (DirectionMessage, bool) {
	switch utils.DirectionFromString(string(key)) {
	case utils.DirectionLeft:
		return DirectionMessage{Direction: utils.KeyArrowLeft}, true
	case utils.DirectionRight:
		return DirectionMessage{Direction: utils.KeyArrowRight}, true
	}
	return DirectionMessage{}, false
}

func watchURL(addr string, color bool) string {
	url := "ws://" + addr + "/watch"
	if color {
		url += "?color=true"
	}
	return url
}

func isQuitKey(key byte) bool {
	return key == 'q' || key == 'Q' || key == 3 // Ctrl-C
}

func main() {
	addr := flag.String("addr", "localhost:3001", "game server address")
	color := flag.Bool("color", false, "ask the server for 24-bit colour frames")
	flag.Parse()

	websocketConnection, err := websocket.Dial(watchURL(*addr, *color), "", "http://localhost/")
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		os.Exit(1)
	}
	defer websocketConnection.Close()

	savedTerminalSettings, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		fmt.Println("Error setting raw mode:", err)
		os.Exit(1)
	}
	defer restoreTerminal(savedTerminalSettings)

	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt)
	go func() {
		<-interruptSignalChannel
		restoreTerminal(savedTerminalSettings)
		os.Exit(0)
	}()

	go func() {
		for {
			var frame string
			if err := websocket.Message.Receive(websocketConnection, &frame); err != nil {
				fmt.Println("Error reading from server:", err)
				restoreTerminal(savedTerminalSettings)
				os.Exit(0)
			}
			helpers.ClearScreen()
			fmt.Print(frame)
		}
	}()

	singleByteBuffer := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(singleByteBuffer); err != nil {
			return
		}
		key := singleByteBuffer[0]
		if isQuitKey(key) {
			fmt.Println("Quitting game")
			return
		}
		directionMessage, ok := keyToDirection(key)
		if !ok {
			continue
		}

		jsonMessage, err := json.Marshal(directionMessage)
		if err != nil {
			fmt.Println("Error marshalling message:", err)
			return
		}
		if _, err := websocketConnection.Write(jsonMessage); err != nil {
			fmt.Println("Error sending to server:", err)
			return
		}
	}
}
