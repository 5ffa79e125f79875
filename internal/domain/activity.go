package domain

// Activity is the presence payload in its wire shape. Absent optional
// fields are omitted entirely rather than sent empty; the host treats an
// empty list and a missing field differently.
type Activity struct {
	Details    string      `json:"details,omitempty"`
	State      string      `json:"state,omitempty"`
	Timestamps *Timestamps `json:"timestamps,omitempty"`
	Assets     *Assets     `json:"assets,omitempty"`
	Party      *Party      `json:"party,omitempty"`
	Buttons    []Button    `json:"buttons,omitempty"`
}

type Timestamps struct {
	Start int64 `json:"start"`
}

type Assets struct {
	LargeImage string `json:"large_image,omitempty"`
	LargeText  string `json:"large_text,omitempty"`
	SmallImage string `json:"small_image,omitempty"`
	SmallText  string `json:"small_text,omitempty"`
}

// Party carries occupancy as [capacity, size].
type Party struct {
	Size [2]int `json:"size"`
}

type Button struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
