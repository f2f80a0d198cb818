package utilities

import (
	"encoding/json"
	"log"
)

type Serializable interface {
	Serialize() ([]byte, error)
}

func Serialize[T any](content T) ([]byte, error) {
	return json.Marshal(content)
}

func FailOnError(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s", msg, err)
	}
}
