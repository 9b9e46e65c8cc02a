package device

import "fmt"

// Apply replays one instruction against the cursor directory and returns the
// new cursor. Navigation failures propagate; exiting the root keeps the
// cursor in place.
func Apply(cursor *Node, instruction Instruction) (*Node, error) {
	switch instruction.Kind {
	case InstructionGoToRoot:
		return cursor.Root(), nil
	case InstructionExitToParent:
		if parent := cursor.Parent(); parent != nil {
			return parent, nil
		}
		return cursor, nil
	case InstructionEnterChild:
		return cursor.Child(instruction.Target)
	case InstructionListEntries:
		for _, entryLine := range instruction.Entries {
			if populateError := cursor.PopulateEntry(entryLine); populateError != nil {
				return nil, populateError
			}
		}
		return cursor, nil
	}
	return nil, fmt.Errorf("unknown instruction kind %d", instruction.Kind)
}

// Replay parses a recorded terminal session and applies every instruction in
// input order, returning the root of the reconstructed tree. Any parse or
// lookup failure aborts the replay.
func Replay(session string) (*Node, error) {
	instructions, parseError := ParseSession(session)
	if parseError != nil {
		return nil, parseError
	}

	root := NewRoot()
	cursor := root
	for _, instruction := range instructions {
		nextCursor, applyError := Apply(cursor, instruction)
		if applyError != nil {
			return nil, applyError
		}
		cursor = nextCursor
	}
	return root, nil
}
