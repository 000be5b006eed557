package result

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-zookeeper/zk"
)

// Code is the outcome of one operation.
type Code string

const (
	Success Code = "success"
	Failed  Code = "failed"
)

// StatFields is the wire order of the znode_stat keys. It is part of the output
// contract and does not follow the field layout of zk.Stat.
var StatFields = []string{
	"czxid",
	"mzxid",
	"ctime",
	"mtime",
	"version",
	"cversion",
	"aversion",
	"ephemeral_owner",
	"data_length",
	"num_children",
	"pzxid",
}

// ZnodeStat is the serialized projection of the metadata the server reports for a ZNode.
type ZnodeStat struct {
	Czxid          int64 `json:"czxid"`
	Mzxid          int64 `json:"mzxid"`
	Ctime          int64 `json:"ctime"`
	Mtime          int64 `json:"mtime"`
	Version        int32 `json:"version"`
	Cversion       int32 `json:"cversion"`
	Aversion       int32 `json:"aversion"`
	EphemeralOwner int64 `json:"ephemeral_owner"`
	DataLength     int32 `json:"data_length"`
	NumChildren    int32 `json:"num_children"`
	Pzxid          int64 `json:"pzxid"`
}

// FromStat copies a zk.Stat into a ZnodeStat. A nil stat gives nil.
func FromStat(s *zk.Stat) *ZnodeStat {
	if s == nil {
		return nil
	}
	return &ZnodeStat{
		Czxid:          s.Czxid,
		Mzxid:          s.Mzxid,
		Ctime:          s.Ctime,
		Mtime:          s.Mtime,
		Version:        s.Version,
		Cversion:       s.Cversion,
		Aversion:       s.Aversion,
		EphemeralOwner: s.EphemeralOwner,
		DataLength:     s.DataLength,
		NumChildren:    s.NumChildren,
		Pzxid:          s.Pzxid,
	}
}

// OpResult is the single output of a run. Absent optional fields encode as null.
type OpResult struct {
	Code      Code       `json:"code"`
	ZnodeStat *ZnodeStat `json:"znode_stat"`
	Value     *string    `json:"value"`
	Error     *string    `json:"error"`
}

func Succeeded(stat *zk.Stat) OpResult {
	return OpResult{Code: Success, ZnodeStat: FromStat(stat)}
}

// Failure builds a failed result. A nil err leaves the error field empty.
func Failure(err error) OpResult {
	r := OpResult{Code: Failed}
	if err != nil {
		msg := err.Error()
		r.Error = &msg
	}
	return r
}

// Write encodes r as one JSON object followed by a newline.
func Write(w io.Writer, r OpResult) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
