// Package batch runs the flooding calculation over a list of rooms, e.g. for
// a multi-room project comparison. Items are independent; the batch fails on
// the first invalid item.
package batch

import (
	"fmt"

	flooding "Vulcan/internal/calc/flooding"
)

type Room struct {
	RoomName string `json:"room_name"`
	flooding.Input
}

type RoomResult struct {
	RoomName string `json:"room_name"`
	flooding.Result
}

type Input struct {
	Items []Room `json:"items"`
}

type Output struct {
	Results []RoomResult `json:"results"`
}

func Calculate(in Input) (Output, error) {
	if len(in.Items) == 0 {
		return Output{}, fmt.Errorf("no items")
	}
	out := Output{Results: make([]RoomResult, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := flooding.Calculate(item.Input)
		if err != nil {
			return Output{}, fmt.Errorf("room %q: %w", item.RoomName, err)
		}
		out.Results = append(out.Results, RoomResult{RoomName: item.RoomName, Result: res})
	}
	return out, nil
}
