package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehluchkiv/polydemo/internal/dispatch"
)

func TestPrintDetails(t *testing.T) {
	var p1 Printable = Book{Title: "C# Basics", Author: "Abc"}
	var p2 Printable = Magazine{Name: "Tech World", IssueNumber: 25}

	assert.Equal(t, []string{"Book Details:", "Title: C# Basics", "Author: Abc"}, p1.PrintDetails())
	assert.Equal(t, []string{"Magazine Details:", "Name: Tech World", "Issue No: 25"}, p2.PrintDetails())
}

func TestRegistry(t *testing.T) {
	reg := Registry()

	p, err := reg.New("magazine", "Tech World", "25")
	require.NoError(t, err)
	assert.Equal(t, Magazine{Name: "Tech World", IssueNumber: 25}.PrintDetails(), p.PrintDetails())

	_, err = reg.New("magazine", "Tech World", "twenty-five")
	require.ErrorIs(t, err, dispatch.ErrInputFormat)

	_, err = reg.New("book", "only-title")
	require.ErrorIs(t, err, dispatch.ErrInputFormat)
}
