package metadata_parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/nft"
)

func TestDefaultParser(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []nft.Attribute
		wantErr error
	}{
		{
			name: "attributes",
			data: `{"name":"a","attributes":[{"trait_type":"Eyes","value":"Blue"},{"trait_type":"Level","value":3,"display_type":"number"}]}`,
			want: []nft.Attribute{
				{TraitType: "Eyes", Value: "Blue"},
				{TraitType: "Level", Value: float64(3), DisplayType: "number"},
			},
		},
		{
			name: "property details",
			data: `{"properties":{"b":{"name":"Hat","value":"Cap"},"a":{"name":"Background","value":"Red"}}}`,
			want: []nft.Attribute{
				{TraitType: "Background", Value: "Red"},
				{TraitType: "Hat", Value: "Cap"},
			},
		},
		{
			name: "flat properties",
			data: `{"properties":{"Hat":"Cap","Background":"Red"}}`,
			want: []nft.Attribute{
				{TraitType: "Background", Value: "Red"},
				{TraitType: "Hat", Value: "Cap"},
			},
		},
		{
			name:    "no traits",
			data:    `{"name":"plain"}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "not json",
			data:    `<html>`,
			wantErr: domain.ErrInvalidJsonFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := NewDefaultParser().Parse(ctx.Background(), []byte(tt.data))
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}
