package domain

import (
	"encoding/binary"
	"route-directions-service/internal/geo"

	"github.com/cespare/xxhash/v2"
)

func writePoint(d *xxhash.Digest, p geo.Point) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(int64(p.LatMicro())))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(p.LonMicro())))
	_, _ = d.Write(buf[:])
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}
