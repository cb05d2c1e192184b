package monitor

import "time"

type Status struct {
	MongoDB   bool      `json:"mongodb"`
	LastCheck time.Time `json:"last_check"`
}
