package metadata_parser

import (
	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain/nft"
)

type defaultParser struct {
	parsers []MetadataParser
}

// NewDefaultParser tries each known trait layout in turn
func NewDefaultParser() MetadataParser {
	return &defaultParser{
		parsers: []MetadataParser{
			NewAttributesParser(),
			// a property detail object also decodes as a flat property, so it goes first
			NewPropertyDetailParser(),
			NewPropertiesParser(),
		},
	}
}

func (p *defaultParser) Name() string {
	return "Default Parser"
}

func (p *defaultParser) Parse(c ctx.Ctx, data []byte) ([]nft.Attribute, error) {
	var (
		attrs []nft.Attribute
		err   error
	)
	for _, parser := range p.parsers {
		attrs, err = parser.Parse(c, data)
		if err == nil {
			return attrs, nil
		}
	}
	return nil, err
}
