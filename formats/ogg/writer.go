// SPDX-License-Identifier: EPL-2.0

package ogg

import (
	"fmt"

	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4/pkg/media/oggwriter"
	hopus "gopkg.in/hraban/opus.v2"
)

const (
	// packetDuration is the Opus frame length used for every encoded
	// packet: 20 ms, the codec's default trade-off.
	packetMillis = 20

	// rtpClockRate is the RTP timestamp clock for Opus, fixed at 48 kHz
	// by RFC 7587 regardless of the input sample rate.
	rtpClockRate = 48000

	// maxPacketBytes bounds one encoded Opus packet.
	maxPacketBytes = 4000
)

// Writer streams interleaved float32 frames into an Ogg file as Opus
// packets. Input is re-chunked into fixed 20 ms codec frames; a trailing
// partial frame is zero-padded at Close.
type Writer struct {
	mux *oggwriter.OggWriter
	enc *hopus.Encoder

	channels  int
	frameLen  int // samples per channel per packet
	pending   []float32
	packet    []byte
	timestamp uint32
}

// Create opens an Ogg Opus writer at path. Opus itself restricts the
// usable parameters: sampleRate must be 8, 12, 16, 24 or 48 kHz and
// channels must be 1 or 2; anything else is rejected by the codec here.
func Create(path string, sampleRate, channels int) (*Writer, error) {
	enc, err := hopus.NewEncoder(sampleRate, channels, hopus.AppAudio)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	mux, err := oggwriter.New(path, rtpClockRate, uint16(channels))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Writer{
		mux:      mux,
		enc:      enc,
		channels: channels,
		frameLen: sampleRate * packetMillis / 1000,
		packet:   make([]byte, maxPacketBytes),
	}, nil
}

// WriteFloats appends interleaved samples, encoding every completed 20 ms
// frame. Leftover samples are carried until the next write or Close.
func (w *Writer) WriteFloats(samples []float32) error {
	w.pending = append(w.pending, samples...)

	need := w.frameLen * w.channels
	for len(w.pending) >= need {
		if err := w.encodePacket(w.pending[:need]); err != nil {
			return err
		}
		w.pending = w.pending[:copy(w.pending, w.pending[need:])]
	}

	return nil
}

func (w *Writer) encodePacket(pcm []float32) error {
	n, err := w.enc.EncodeFloat32(pcm, w.packet)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	// The Ogg muxer derives granule positions from RTP timestamp deltas
	// on the fixed 48 kHz Opus clock.
	pkt := &rtp.Packet{
		Header:  rtp.Header{Version: 2, Timestamp: w.timestamp},
		Payload: w.packet[:n],
	}
	w.timestamp += rtpClockRate * packetMillis / 1000

	if err := w.mux.WriteRTP(pkt); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close encodes any buffered partial frame padded with silence, then
// finalizes the Ogg stream.
func (w *Writer) Close() error {
	if len(w.pending) > 0 {
		need := w.frameLen * w.channels
		for len(w.pending) < need {
			w.pending = append(w.pending, 0)
		}
		if err := w.encodePacket(w.pending[:need]); err != nil {
			w.mux.Close()
			return err
		}
		w.pending = nil
	}

	if err := w.mux.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
