package htmx

// SwapStrategy defines how HTMX swaps content into the target element.
// Strategies may carry modifiers, e.g. SwapOuterHTML.Show("top").
type SwapStrategy string

const (
	SwapInnerHTML SwapStrategy = "innerHTML" // Replace the inner html of the target element
	SwapOuterHTML SwapStrategy = "outerHTML" // Replace the entire target element with the response
)

// Show appends a "show" modifier so the swapped content scrolls into view,
// e.g. SwapInnerHTML.Show("top") yields "innerHTML show:top".
func (s SwapStrategy) Show(position string) SwapStrategy {
	return s + SwapStrategy(" show:"+position)
}
