package metadata_parser

import (
	"encoding/json"
	"sort"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/nft"
)

// MetadataParser extracts traits from a raw token metadata document.
// It returns domain.ErrNotFound when the document has no traits in the format it reads.
type MetadataParser interface {
	Name() string
	Parse(c ctx.Ctx, data []byte) ([]nft.Attribute, error)
}

type attributesParser struct{}

// NewAttributesParser reads the OpenSea style `attributes` array
func NewAttributesParser() MetadataParser {
	return &attributesParser{}
}

func (im *attributesParser) Name() string {
	return "Attributes Parser"
}

func (im *attributesParser) Parse(c ctx.Ctx, data []byte) ([]nft.Attribute, error) {
	meta := struct {
		Attributes []nft.Attribute `json:"attributes"`
	}{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	if len(meta.Attributes) == 0 {
		return nil, domain.ErrNotFound
	}
	return meta.Attributes, nil
}

type propertiesParser struct{}

// NewPropertiesParser reads a flat `properties` object, trait name to value
func NewPropertiesParser() MetadataParser {
	return &propertiesParser{}
}

func (im *propertiesParser) Name() string {
	return "Properties Parser"
}

func (im *propertiesParser) Parse(c ctx.Ctx, data []byte) ([]nft.Attribute, error) {
	meta := struct {
		Properties map[string]interface{} `json:"properties"`
	}{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	if len(meta.Properties) == 0 {
		return nil, domain.ErrNotFound
	}

	attrs := make([]nft.Attribute, 0, len(meta.Properties))
	for k, v := range meta.Properties {
		attrs = append(attrs, nft.Attribute{TraitType: k, Value: v})
	}
	sortByTrait(attrs)
	return attrs, nil
}

type propertyDetail struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type propertyDetailParser struct{}

// NewPropertyDetailParser reads `properties` whose entries are {name, value} objects
func NewPropertyDetailParser() MetadataParser {
	return &propertyDetailParser{}
}

func (im *propertyDetailParser) Name() string {
	return "PropertyDetail Parser"
}

func (im *propertyDetailParser) Parse(c ctx.Ctx, data []byte) ([]nft.Attribute, error) {
	meta := struct {
		Properties map[string]propertyDetail `json:"properties"`
	}{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	if len(meta.Properties) == 0 {
		return nil, domain.ErrNotFound
	}

	attrs := make([]nft.Attribute, 0, len(meta.Properties))
	for _, v := range meta.Properties {
		if len(v.Name) == 0 {
			return nil, domain.ErrNotFound
		}
		attrs = append(attrs, nft.Attribute{TraitType: v.Name, Value: v.Value})
	}
	sortByTrait(attrs)
	return attrs, nil
}

func sortByTrait(attrs []nft.Attribute) {
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].TraitType < attrs[j].TraitType
	})
}
