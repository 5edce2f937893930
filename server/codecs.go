// File: server/codecs.go
package server

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/render"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/net/websocket"
)

const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// ErrUnknownFormat is returned for an unsupported ?format= value.
var ErrUnknownFormat = errors.New("unknown stream format")

// MsgpackCodec sends binary msgpack frames. Field names follow the json tags
// so both formats decode into the same shape.
var MsgpackCodec = websocket.Codec{Marshal: msgpackMarshal, Unmarshal: msgpackUnmarshal}

func msgpackMarshal(v interface{}) ([]byte, byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, websocket.BinaryFrame, fmt.Errorf("msgpack encode %T: %w", v, err)
	}
	return buf.Bytes(), websocket.BinaryFrame, nil
}

func msgpackUnmarshal(data []byte, _ byte, v interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// ASCIICodec renders frames as text for terminal clients. It can only send.
func ASCIICodec(cols, rows int) websocket.Codec {
	return textFrameCodec(func(state game.GameState) string {
		return render.RenderToASCII(state, cols, rows)
	})
}

// ANSICodec is ASCIICodec with 24-bit colour escapes. Every cell is two
// characters wide.
func ANSICodec(cols, rows int) websocket.Codec {
	return textFrameCodec(func(state game.GameState) string {
		return render.RenderToANSI(state, cols, rows)
	})
}

func textFrameCodec(draw func(game.GameState) string) websocket.Codec {
	return websocket.Codec{
		Marshal: func(v interface{}) ([]byte, byte, error) {
			switch msg := v.(type) {
			case game.GameStateUpdate:
				frame := draw(msg.State) + render.StatusLine(msg.State) + "\n"
				return []byte(frame), websocket.TextFrame, nil
			case game.GameOverMessage:
				return []byte(render.GameOverText(msg) + "\n"), websocket.TextFrame, nil
			}
			return nil, websocket.TextFrame, fmt.Errorf("text codec cannot render %T", v)
		},
		Unmarshal: func(data []byte, _ byte, v interface{}) error {
			return errors.New("text codec is send-only")
		},
	}
}

// watchCodec picks the /watch codec; ?color=true switches to ANSI colour.
func watchCodec(color string) (websocket.Codec, error) {
	if color == "" {
		return ASCIICodec(watchCols, watchRows), nil
	}
	enabled, err := strconv.ParseBool(color)
	if err != nil {
		return websocket.Codec{}, fmt.Errorf("%w: color=%q", ErrUnknownFormat, color)
	}
	if enabled {
		return ANSICodec(watchCols/2, watchRows), nil
	}
	return ASCIICodec(watchCols, watchRows), nil
}

// codecForFormat picks the stream codec for a /subscribe client.
func codecForFormat(format string) (websocket.Codec, error) {
	switch format {
	case "", FormatJSON:
		return websocket.JSON, nil
	case FormatMsgpack:
		return MsgpackCodec, nil
	}
	return websocket.Codec{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
