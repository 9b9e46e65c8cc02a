package device

import (
	"regexp"
	"strconv"
	"strings"
)

// InstructionKind identifies one of the four recognized command grammars.
type InstructionKind int

const (
	// InstructionGoToRoot moves the cursor back to the tree root ("cd /").
	InstructionGoToRoot InstructionKind = iota
	// InstructionExitToParent moves the cursor to the parent directory ("cd ..").
	InstructionExitToParent
	// InstructionEnterChild moves the cursor into a named child ("cd <name>").
	InstructionEnterChild
	// InstructionListEntries populates the cursor directory from entry lines ("ls").
	InstructionListEntries
)

// Instruction is one parsed navigation or listing command.
type Instruction struct {
	Kind    InstructionKind
	Target  string   // child name for InstructionEnterChild
	Entries []string // raw entry lines for InstructionListEntries
}

// Prompt is the marker separating command blocks in a recorded session.
const Prompt = "$"

var (
	goToRootPattern     = regexp.MustCompile(`^cd /`)
	exitToParentPattern = regexp.MustCompile(`^cd \.\.`)
	enterChildPattern   = regexp.MustCompile(`^cd\s+(\w+)`)
	listPattern         = regexp.MustCompile(`^ls`)

	directoryEntryPattern = regexp.MustCompile(`^dir\s([\w.]+)$`)
	fileEntryPattern      = regexp.MustCompile(`^(\d+)\s([\w.]+)$`)
)

// ParseInstruction converts one command block into an Instruction. A block is
// a single command line, optionally followed by newline-separated entry lines
// for "ls". Grammars are tried in priority order and the first match wins;
// a block matching none of them fails with SyntaxError.
func ParseInstruction(block string) (Instruction, error) {
	trimmed := strings.TrimSpace(block)
	switch {
	case goToRootPattern.MatchString(trimmed):
		return Instruction{Kind: InstructionGoToRoot}, nil
	case exitToParentPattern.MatchString(trimmed):
		return Instruction{Kind: InstructionExitToParent}, nil
	case enterChildPattern.MatchString(trimmed):
		return Instruction{
			Kind:   InstructionEnterChild,
			Target: strings.TrimSpace(trimmed[len("cd "):]),
		}, nil
	case listPattern.MatchString(trimmed):
		return Instruction{
			Kind:    InstructionListEntries,
			Entries: splitEntryLines(trimmed[len("ls"):]),
		}, nil
	}
	return Instruction{}, &SyntaxError{Line: trimmed}
}

// ParseSession splits a recorded terminal session on the prompt marker and
// parses every non-empty block in order.
func ParseSession(session string) ([]Instruction, error) {
	blocks := strings.Split(strings.TrimSpace(session), Prompt)
	instructions := make([]Instruction, 0, len(blocks))
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		instruction, parseError := ParseInstruction(block)
		if parseError != nil {
			return nil, parseError
		}
		instructions = append(instructions, instruction)
	}
	return instructions, nil
}

// splitEntryLines trims the raw remainder of an "ls" block into individual
// entry lines. An empty remainder yields no entries.
func splitEntryLines(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	rawLines := strings.Split(trimmed, "\n")
	entries := make([]string, 0, len(rawLines))
	for _, rawLine := range rawLines {
		entries = append(entries, strings.TrimSpace(rawLine))
	}
	return entries
}

// PopulateEntry parses one listing line and inserts the described entry under
// the node. Lines are either "dir <name>" for a subdirectory or
// "<size> <name>" for a file; anything else fails with SyntaxError.
func (node *Node) PopulateEntry(line string) error {
	trimmed := strings.TrimSpace(line)

	if matches := directoryEntryPattern.FindStringSubmatch(trimmed); matches != nil {
		return node.AddDirectory(matches[1])
	}

	if matches := fileEntryPattern.FindStringSubmatch(trimmed); matches != nil {
		size, sizeError := strconv.Atoi(matches[1])
		if sizeError != nil {
			return &SyntaxError{Line: trimmed}
		}
		return node.AddFile(matches[2], size)
	}

	return &SyntaxError{Line: trimmed}
}
