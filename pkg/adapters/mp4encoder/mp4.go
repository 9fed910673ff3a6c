package mp4encoder

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
)

const (
	naluTypeIDR = 5
	naluTypeSPS = 7
	naluTypePPS = 8
	naluTypeAUD = 9
)

// accessUnit is one video sample: every NAL unit belonging to a single
// coded picture.
type accessUnit struct {
	nalus      [][]byte
	isKeyframe bool
}

// splitAccessUnits splits an Annex B elementary stream into access
// units using the AUD NAL units ffmpeg was asked to emit.
func splitAccessUnits(stream []byte) []accessUnit {
	nalus := splitAnnexB(stream)

	var units []accessUnit
	var current *accessUnit
	for _, nalu := range nalus {
		if len(nalu) == 0 {
			continue
		}
		naluType := nalu[0] & 0x1F
		if naluType == naluTypeAUD {
			if current != nil && len(current.nalus) > 0 {
				units = append(units, *current)
			}
			current = &accessUnit{}
			continue
		}
		if current == nil {
			current = &accessUnit{}
		}
		if naluType == naluTypeIDR {
			current.isKeyframe = true
		}
		current.nalus = append(current.nalus, nalu)
	}
	if current != nil && len(current.nalus) > 0 {
		units = append(units, *current)
	}
	return units
}

// splitAnnexB splits a byte stream on 3- and 4-byte start codes.
func splitAnnexB(data []byte) [][]byte {
	var nalus [][]byte
	start := -1
	i := 0
	for i+2 < len(data) {
		if data[i] == 0 && data[i+1] == 0 && (data[i+2] == 1 || (i+3 < len(data) && data[i+2] == 0 && data[i+3] == 1)) {
			codeLen := 3
			if data[i+2] == 0 {
				codeLen = 4
			}
			if start >= 0 {
				nalus = append(nalus, data[start:i])
			}
			i += codeLen
			start = i
			continue
		}
		i++
	}
	if start >= 0 && start < len(data) {
		nalus = append(nalus, data[start:])
	}
	return nalus
}

// buildMP4 muxes the access units into a fragmented MP4.
func (e *Encoder) buildMP4(units []accessUnit) ([]byte, error) {
	timescale := uint32(e.fps * 1000)
	frameDur := uint32(1000) // one frame in fps*1000 timescale

	sps, pps, err := findParameterSets(units)
	if err != nil {
		return nil, err
	}
	avcC, err := mp4.CreateAvcC([][]byte{sps}, [][]byte{pps}, true)
	if err != nil {
		return nil, fmt.Errorf("create avcC: %w", err)
	}

	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(timescale, "video", "en")
	trak := init.Moov.Trak
	avc1 := mp4.CreateVisualSampleEntryBox("avc1", uint16(e.width), uint16(e.height), avcC)
	trak.Mdia.Minf.Stbl.Stsd.AddChild(avc1)
	trak.Tkhd.Width = mp4.Fixed32(e.width << 16)
	trak.Tkhd.Height = mp4.Fixed32(e.height << 16)

	frag, err := mp4.CreateFragment(1, 1)
	if err != nil {
		return nil, fmt.Errorf("create fragment: %w", err)
	}

	for i, unit := range units {
		flags := mp4.NonSyncSampleFlags
		if unit.isKeyframe {
			flags = mp4.SyncSampleFlags
		}
		sample := lengthPrefixed(unit)
		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags: flags,
				Size:  uint32(len(sample)),
				Dur:   frameDur,
			},
			DecodeTime: uint64(i) * uint64(frameDur),
			Data:       sample,
		})
	}

	var buf bytes.Buffer
	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "avc1", "mp41"})
	if err := ftyp.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode ftyp: %w", err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode moov: %w", err)
	}
	if err := frag.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}
	return buf.Bytes(), nil
}

// findParameterSets pulls the first SPS and PPS out of the stream.
func findParameterSets(units []accessUnit) (sps, pps []byte, err error) {
	for _, unit := range units {
		for _, nalu := range unit.nalus {
			switch nalu[0] & 0x1F {
			case naluTypeSPS:
				if sps == nil {
					sps = append([]byte(nil), nalu...)
				}
			case naluTypePPS:
				if pps == nil {
					pps = append([]byte(nil), nalu...)
				}
			}
		}
		if sps != nil && pps != nil {
			return sps, pps, nil
		}
	}
	return nil, nil, fmt.Errorf("parameter sets not found in stream")
}

// lengthPrefixed converts an access unit to AVCC sample data. SPS and
// PPS are dropped; they live in the avcC box.
func lengthPrefixed(unit accessUnit) []byte {
	var out []byte
	for _, nalu := range unit.nalus {
		naluType := nalu[0] & 0x1F
		if naluType == naluTypeSPS || naluType == naluTypePPS {
			continue
		}
		out = append(out,
			byte(len(nalu)>>24), byte(len(nalu)>>16), byte(len(nalu)>>8), byte(len(nalu)))
		out = append(out, nalu...)
	}
	return out
}
