package components

import "github.com/yohamta/donburi"

// Command is a request from one behavior to another.
type Command int

const (
	// CommandRetriggerJump restarts the jump with a fresh air-jump budget.
	CommandRetriggerJump Command = iota
)

func (c Command) String() string {
	switch c {
	case CommandRetriggerJump:
		return "retrigger_jump"
	}
	return "invalid"
}

// CommandsData is the player's behavior inbox. The receiving behavior takes
// its commands during its own update.
type CommandsData struct {
	queue []Command
}

func (c *CommandsData) Push(cmd Command) {
	c.queue = append(c.queue, cmd)
}

// Take removes every queued cmd and reports whether there was one.
func (c *CommandsData) Take(cmd Command) bool {
	found := false
	kept := c.queue[:0]
	for _, q := range c.queue {
		if q == cmd {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	c.queue = kept
	return found
}

func (c *CommandsData) Len() int { return len(c.queue) }

var Commands = donburi.NewComponentType[CommandsData]()
