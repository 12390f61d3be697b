package ui

// MoveCursor moves a cursor by delta within [0, itemCount), clamping at both ends.
// Returns the cursor unchanged if the list is empty.
func MoveCursor(cursor, delta, itemCount int) int {
	if itemCount == 0 {
		return cursor
	}
	cursor += delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= itemCount {
		cursor = itemCount - 1
	}
	return cursor
}

// CalculateVisibleHeight returns how many items fit in the given height
// after subtracting padding lines
func CalculateVisibleHeight(height, itemCount, padding int) int {
	visible := height - padding
	if visible < 1 {
		visible = 1
	}
	if visible > itemCount {
		visible = itemCount
	}
	return visible
}

// IsScrollable returns true if the item count exceeds the visible height
func IsScrollable(height, itemCount, padding int) bool {
	visible := height - padding
	if visible < 1 {
		visible = 1
	}
	return itemCount > visible
}

// EnsureCursorVisible adjusts the scroll offset so the cursor stays within
// the visible window. Returns the new scroll offset.
func EnsureCursorVisible(cursor, scrollOffset, itemCount, visibleHeight int) int {
	if itemCount == 0 || visibleHeight <= 0 {
		return 0
	}

	// Scroll up if cursor is above the window
	if cursor < scrollOffset {
		scrollOffset = cursor
	}

	// Scroll down if cursor is below the window
	if cursor >= scrollOffset+visibleHeight {
		scrollOffset = cursor - visibleHeight + 1
	}

	// Clamp to valid range
	maxOffset := itemCount - visibleHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	return scrollOffset
}
