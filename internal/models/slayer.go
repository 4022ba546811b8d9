package models

// SlayerTask is one entry of a slayer master's assignment table
type SlayerTask struct {
	Monster        string       `json:"monster"`
	Amount         AmountRange  `json:"amount"`
	ExtendedAmount *AmountRange `json:"extendedAmount,omitempty"`
	Weight         int          `json:"weight"`
	SlayerLevel    int          `json:"slayerLevel"`
	Unlock         string       `json:"unlock,omitempty"` // reward that extends the task
	Locations      []string     `json:"locations,omitempty"`
}

// AmountRange is an inclusive kill-count range
type AmountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SlayerMaster is a master and its ordered task table
type SlayerMaster struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Tasks []SlayerTask `json:"tasks"`
}
