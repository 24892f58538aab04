package helpers

import (
	"fmt"
	"time"

	"github.com/jakehl/goid"
)

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

func LocationTehran() *time.Location {
	location, err := time.LoadLocation("Asia/Tehran")
	if err != nil {
		fmt.Println(err)
	}
	return location
}

func GetCurrentTime() time.Time {
	return time.Now().In(LocationTehran())
}
