package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
)

func Test_dataUriReaderRepo_Get(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr error
	}{
		{
			name:    "invalid schema",
			uri:     "https://url",
			wantErr: ErrInvalidDataUri,
		},
		{
			name:    "empty data part",
			uri:     "data:application/json;base64,",
			wantErr: ErrEmptyDataUri,
		},
		{
			name:    "no data part",
			uri:     "data:application/json;base64",
			wantErr: ErrEmptyDataUri,
		},
		{
			name: "utf8 json",
			uri:  `data:application/json;utf8,{"name":"Genesis #1","image":"ipfs://QmImage/1.svg","attributes":[{"trait_type":"Mind","value":14}]}`,
			want: `{"name":"Genesis #1","image":"ipfs://QmImage/1.svg","attributes":[{"trait_type":"Mind","value":14}]}`,
		},
		{
			name: "base64 json",
			uri:  "data:application/json;base64,eyJuYW1lIjoiQ2F0In0=",
			want: `{"name":"Cat"}`,
		},
		{
			name: "percent encoded svg",
			uri:  "data:image/svg+xml,%3Csvg%20xmlns%3D%22http%3A%2F%2Fwww.w3.org%2F2000%2Fsvg%22%2F%3E",
			want: `<svg xmlns="http://www.w3.org/2000/svg"/>`,
		},
		{
			name: "json with a literal percent",
			uri:  `data:application/json,{"name":"100%"}`,
			want: `{"name":"100%"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			r := NewDataUriReaderRepo()
			got, err := r.Get(bCtx.Background(), tt.uri)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, string(got))
		})
	}
}
