package pagination_test

import (
	"fmt"
	"testing"

	"github.com/PFTrackr/fin_tracker_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginator_TotalPages(t *testing.T) {
	p := pagination.New(10)

	assert.Equal(t, 3, p.TotalPages(25))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 2, p.TotalPages(11))
	assert.Equal(t, 1, p.TotalPages(0))
}

func TestPaginator_GoToClampsToLastPage(t *testing.T) {
	p := pagination.New(10)

	p = p.GoTo(5, 25)
	assert.Equal(t, 3, p.CurrentPage)

	p = p.GoTo(-2, 25)
	assert.Equal(t, 1, p.CurrentPage)
}

func TestPaginator_SetItemsPerPageResetsToPageOne(t *testing.T) {
	p := pagination.New(10).GoTo(3, 25)

	p = p.SetItemsPerPage(5)

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 5, p.ItemsPerPage)
	assert.Equal(t, 5, p.TotalPages(25))
}

func TestPaginator_NextAndPreviousClamp(t *testing.T) {
	p := pagination.New(10)

	p = p.Previous()
	assert.Equal(t, 1, p.CurrentPage)

	p = p.Next(25).Next(25).Next(25).Next(25)
	assert.Equal(t, 3, p.CurrentPage)
}

func TestPaginator_ClampResetsStalePage(t *testing.T) {
	// Page 3 was valid for 25 items; after the collection shrinks to 5 the
	// page falls off the end and resets to 1.
	p := pagination.New(10).GoTo(3, 25)

	p = p.Clamp(5)

	assert.Equal(t, 1, p.CurrentPage)
}

func TestPaginator_BoundsMayExceedTotalItems(t *testing.T) {
	p := pagination.New(10).GoTo(3, 25)

	start, end := p.Bounds()

	assert.Equal(t, 20, start)
	assert.Equal(t, 30, end) // exclusive bound past the end; Slice clamps
}

func TestSlice_ConcatenatedPagesReproduceTheSequence(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	for _, perPage := range []int{1, 4, 10, 25, 40} {
		t.Run(fmt.Sprintf("perPage=%d", perPage), func(t *testing.T) {
			p := pagination.New(perPage)
			var joined []int
			for page := 1; page <= p.TotalPages(len(items)); page++ {
				joined = append(joined, pagination.Slice(items, p.GoTo(page, len(items)))...)
			}
			require.Equal(t, items, joined)
		})
	}
}

func TestSlice_PageBeyondItemsIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}
	p := pagination.Paginator{CurrentPage: 4, ItemsPerPage: 10}

	assert.Empty(t, pagination.Slice(items, p))
}
