package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var strokeSeq uint64

func nextSeq() uint64 {
	return atomic.AddUint64(&strokeSeq, 1)
}

func newStrokeID() string {
	return uuid.NewString()
}
