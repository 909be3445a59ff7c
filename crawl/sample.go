package crawl

import "slices"

// Sample picks up to n URLs spread evenly across urls, skipping any in
// exclude. The choice depends only on the inputs.
func Sample(urls []string, n int, exclude ...string) []string {
	candidates := make([]string, 0, len(urls))
	for _, u := range urls {
		if !slices.Contains(exclude, u) {
			candidates = append(candidates, u)
		}
	}
	if n <= 0 || len(candidates) <= n {
		return candidates
	}

	picked := make([]string, 0, n)
	step := float64(len(candidates)) / float64(n)
	for i := range n {
		picked = append(picked, candidates[int(float64(i)*step)])
	}
	return picked
}
