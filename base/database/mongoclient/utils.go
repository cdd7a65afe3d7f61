package mongoclient

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM turns an updater struct into a $set document.
// Nil pointers and zero values are left out, a set pointer is dereferenced
// even when it points to a zero value.
func MakeBsonM(updater interface{}) (bson.M, error) {
	v := reflect.Indirect(reflect.ValueOf(updater))
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("MakeBsonM: %T is not a struct", updater)
	}

	res := bson.M{}
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		tag, err := bsoncodec.DefaultStructTagParser(sf)
		if err != nil {
			return nil, err
		}
		f := v.Field(i)
		if tag.Skip || f.IsZero() {
			continue
		}
		if f.Kind() == reflect.Ptr {
			f = f.Elem()
		}
		res[tag.Name] = f.Interface()
	}
	return res, nil
}
