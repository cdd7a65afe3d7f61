package repository

import (
	"strings"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
)

type ipfsNodeReader struct {
	shell    *ipfsapi.Shell
	timeout  time.Duration
	maxBytes int64
}

// NewIpfsNodeApiReaderRepo cats "<cid>[/path]" from a kubo node api, an ipfs:// prefix is accepted
func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeReader{shell: s, timeout: timeout, maxBytes: DefaultMaxBytes}
}

func (r *ipfsNodeReader) Get(c ctx.Ctx, path string) ([]byte, error) {
	path = strings.TrimPrefix(path, "ipfs://")
	tc, cancel := ctx.WithTimeout(c, r.timeout)
	defer cancel()

	resp, err := r.shell.Request("cat", path).Send(tc)
	if err == nil && resp.Error != nil {
		resp.Close()
		err = resp.Error
	}
	if err != nil {
		c.WithFields(log.Fields{"err": err, "path": path}).Error("ipfs cat failed")
		return nil, err
	}
	defer resp.Close()

	body, err := readAtMost(resp.Output, r.maxBytes)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "path": path}).Error("read ipfs output failed")
		return nil, err
	}
	return body, nil
}
