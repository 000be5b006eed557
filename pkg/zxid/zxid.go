package zxid

import (
	"fmt"
	"math"
)

/*
A ZXID identifies one state change of the tree. It has two parts: the epoch in the high
order 32 bits and a counter in the low order 32 bits. The epoch changes with leadership,
the counter is bumped for every transaction within an epoch.
See https://zookeeper.apache.org/doc/r3.4.13/zookeeperInternals.html#sc_guaranteesPropertiesDefinitions
*/
type ZXID int64

func NewZXID(epoch int32, counter uint32) ZXID {
	return ZXID(int64(epoch)<<32 | int64(counter))
}

func (z ZXID) Epoch() int32 {
	return int32(z >> 32)
}

func (z ZXID) Counter() uint32 {
	return uint32(z & 0xFFFFFFFF)
}

// Next returns the zxid of the following transaction. When the counter is used up
// the epoch is bumped and counting restarts at 1.
func (z ZXID) Next() ZXID {
	if z.Counter() == math.MaxUint32 {
		return NewZXID(z.Epoch()+1, 1)
	}
	return NewZXID(z.Epoch(), z.Counter()+1)
}

func (z ZXID) String() string {
	return fmt.Sprintf("0x%x", int64(z))
}
