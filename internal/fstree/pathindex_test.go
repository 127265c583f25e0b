package fstree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathIndex_Lookup(t *testing.T) {
	idx := NewPathIndex(Sample())

	t.Run("root by empty path", func(t *testing.T) {
		node, ok := idx.Lookup("")
		require.True(t, ok)
		assert.IsType(t, &Dir{}, node)
	})

	t.Run("nested directory", func(t *testing.T) {
		node, ok := idx.Lookup("Documents/Personal/Photos")
		require.True(t, ok)

		dir, isDir := node.(*Dir)
		require.True(t, isDir)
		assert.Equal(t, 3, dir.Len())
	})

	t.Run("file", func(t *testing.T) {
		node, ok := idx.Lookup("Downloads/video.mp4")
		require.True(t, ok)
		assert.Equal(t, int64(35000000), node.(File).Size())
	})

	t.Run("normalized segments", func(t *testing.T) {
		node, ok := idx.Lookup("./Documents//Personal/")
		require.True(t, ok)
		assert.Equal(t, "Personal", node.Name())
	})

	t.Run("missing path", func(t *testing.T) {
		_, ok := idx.Lookup("Documents/Missing")
		assert.False(t, ok)
	})

	t.Run("file name under wrong parent", func(t *testing.T) {
		_, ok := idx.Lookup("Documents/video.mp4")
		assert.False(t, ok)
	})
}

func TestPathIndex_Len(t *testing.T) {
	// 16 files, 6 directories, plus the root itself.
	assert.Equal(t, 23, NewPathIndex(Sample()).Len())

	assert.Equal(t, 1, NewPathIndex(NewRoot()).Len())
}

func TestPathIndex_WalkPrefix(t *testing.T) {
	idx := NewPathIndex(Sample())

	t.Run("collects matching subtrees", func(t *testing.T) {
		var paths []string
		idx.WalkPrefix("Documents/P", func(path string, _ Node) bool {
			paths = append(paths, path)

			return false
		})

		assert.Equal(t, []string{
			"Documents/Personal",
			"Documents/Personal/Photos",
			"Documents/Personal/Photos/family.jpg",
			"Documents/Personal/Photos/graduation.png",
			"Documents/Personal/Photos/vacation.jpg",
			"Documents/Personal/budget.xlsx",
			"Documents/Personal/resume.pdf",
			"Documents/Projects",
			"Documents/Projects/data.csv",
			"Documents/Projects/notes.txt",
			"Documents/Projects/project1.docx",
			"Documents/Projects/project2.docx",
		}, paths)
	})

	t.Run("early stop", func(t *testing.T) {
		var visited int
		idx.WalkPrefix("", func(string, Node) bool {
			visited++

			return visited == 3
		})

		assert.Equal(t, 3, visited)
	})
}
