// Package rucksack finds misplaced items and group badges in packed
// rucksack inventories.
package rucksack

import (
	"fmt"
	"strings"
)

const groupSize = 3

// priorityRange covers a-z (1-26) and A-Z (27-52).
const priorityRange = 52

// Priority returns an item's priority: a-z map to 1-26, A-Z to 27-52.
func Priority(item rune) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, fmt.Errorf("item %q is not an English letter", item)
}

// commonItems returns the items present in both strings, in the order they
// appear in the second.
func commonItems(first, second string) (string, error) {
	var seen [priorityRange]bool
	for _, item := range first {
		priority, priorityError := Priority(item)
		if priorityError != nil {
			return "", priorityError
		}
		seen[priority-1] = true
	}
	var common strings.Builder
	for _, item := range second {
		priority, priorityError := Priority(item)
		if priorityError != nil {
			return "", priorityError
		}
		if seen[priority-1] {
			common.WriteRune(item)
		}
	}
	return common.String(), nil
}

// misplacedItem returns the item common to both halves of a rucksack line.
func misplacedItem(line string) (rune, error) {
	if len(line)%2 != 0 {
		return 0, fmt.Errorf("rucksack %q has odd length and cannot be split evenly", line)
	}
	half := len(line) / 2
	common, commonError := commonItems(line[:half], line[half:])
	if commonError != nil {
		return 0, commonError
	}
	if common == "" {
		return 0, fmt.Errorf("rucksack %q has no item common to both compartments", line)
	}
	return []rune(common)[0], nil
}

// MisplacedPrioritySum sums the priority of the item shared by the two
// compartments of every rucksack.
func MisplacedPrioritySum(lines []string) (int, error) {
	sum := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		item, itemError := misplacedItem(trimmed)
		if itemError != nil {
			return 0, itemError
		}
		priority, priorityError := Priority(item)
		if priorityError != nil {
			return 0, priorityError
		}
		sum += priority
	}
	return sum, nil
}

// BadgePrioritySum groups rucksacks in threes and sums the priority of the
// single item every member of a group carries.
func BadgePrioritySum(lines []string) (int, error) {
	group := make([]string, 0, groupSize)
	sum := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		group = append(group, trimmed)
		if len(group) < groupSize {
			continue
		}
		common, commonError := commonItems(group[0], group[1])
		if commonError != nil {
			return 0, commonError
		}
		common, commonError = commonItems(common, group[2])
		if commonError != nil {
			return 0, commonError
		}
		if common == "" {
			return 0, fmt.Errorf("group ending with %q shares no badge item", trimmed)
		}
		priority, priorityError := Priority([]rune(common)[0])
		if priorityError != nil {
			return 0, priorityError
		}
		sum += priority
		group = group[:0]
	}
	if len(group) != 0 {
		return 0, fmt.Errorf("rucksack count is not a multiple of %d", groupSize)
	}
	return sum, nil
}
