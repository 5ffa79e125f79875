package domain

import (
	"fmt"
	"time"
)

type ClientID string

const (
	PartySizeMin = 0
	PartySizeMax = 32
	PartyMaxMin  = 1
	PartyMaxMax  = 32
)

// Form is the live, editable presence state. The presentation layer and
// preset merges mutate it; Compile turns it into a wire activity.
type Form struct {
	ClientID      ClientID
	Details       string
	State         string
	PartySize     int
	PartyMax      int
	LargeImage    ImageSlot
	SmallImage    ImageSlot
	Buttons       [2]ButtonSlot
	TimestampMode TimestampMode
	CustomDate    time.Time
}

// ImageSlot is one of the two activity art slots. An empty Key omits the
// slot; Text only rides along with a non-empty Key.
type ImageSlot struct {
	Key  string
	Text string
}

// ButtonSlot is one of the two join buttons. The button only exists on the
// wire when both Label and URL are non-empty.
type ButtonSlot struct {
	Label string
	URL   string
}

func DefaultForm() Form {
	return Form{
		PartyMax:      PartyMaxMin,
		TimestampMode: TimestampNone,
	}
}

func (f Form) Validate() error {
	if f.PartySize < PartySizeMin || f.PartySize > PartySizeMax {
		return fmt.Errorf("party size %d out of range [%d,%d]", f.PartySize, PartySizeMin, PartySizeMax)
	}
	if f.PartyMax < PartyMaxMin || f.PartyMax > PartyMaxMax {
		return fmt.Errorf("party max %d out of range [%d,%d]", f.PartyMax, PartyMaxMin, PartyMaxMax)
	}
	if !f.TimestampMode.Valid() {
		return fmt.Errorf("unknown timestamp mode %q", f.TimestampMode)
	}
	return nil
}
