package todoswamp_test

import (
	"testing"

	"github.com/fwojciec/todoswamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest_Add(t *testing.T) {
	t.Parallel()

	t.Run("parses description and tags", func(t *testing.T) {
		t.Parallel()

		req, err := todoswamp.ParseRequest(`add "hello world" #tag1 #tag2`)
		require.NoError(t, err)

		assert.Equal(t, &todoswamp.AddRequest{
			Description: "hello world",
			Tags:        []string{"tag1", "tag2"},
		}, req)
	})

	t.Run("parses description without tags", func(t *testing.T) {
		t.Parallel()

		req, err := todoswamp.ParseRequest(`add "goodbye"`)
		require.NoError(t, err)

		assert.Equal(t, &todoswamp.AddRequest{Description: "goodbye"}, req)
	})

	t.Run("unescapes quotes and backslashes", func(t *testing.T) {
		t.Parallel()

		req, err := todoswamp.ParseRequest(`add "say \"hi\" \\ now \n" #x`)
		require.NoError(t, err)

		add := req.(*todoswamp.AddRequest)
		assert.Equal(t, `say "hi" \ now \n`, add.Description)
	})

	t.Run("ignores surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		req, err := todoswamp.ParseRequest("  add   \"a b\"\t#c  \n")
		require.NoError(t, err)

		assert.Equal(t, &todoswamp.AddRequest{Description: "a b", Tags: []string{"c"}}, req)
	})

	t.Run("rejects malformed add lines", func(t *testing.T) {
		t.Parallel()

		for _, line := range []string{
			`add`,
			`add hello`,
			`add "unterminated`,
			`add "a"#glued`,
			`add "a" notatag`,
			`add "a" #`,
		} {
			_, err := todoswamp.ParseRequest(line)
			require.Error(t, err, line)
			assert.Equal(t, todoswamp.EINVALID, todoswamp.ErrorCode(err), line)
		}
	})
}

func TestParseRequest_Done(t *testing.T) {
	t.Parallel()

	t.Run("parses id", func(t *testing.T) {
		t.Parallel()

		req, err := todoswamp.ParseRequest("done 42")
		require.NoError(t, err)

		assert.Equal(t, &todoswamp.DoneRequest{ID: 42}, req)
	})

	t.Run("accepts negative id for the store to reject", func(t *testing.T) {
		t.Parallel()

		req, err := todoswamp.ParseRequest("done -1")
		require.NoError(t, err)

		assert.Equal(t, &todoswamp.DoneRequest{ID: -1}, req)
	})

	t.Run("reports ids beyond the integer range as not found", func(t *testing.T) {
		t.Parallel()

		for _, line := range []string{"done 99999999999999999999", "done -99999999999999999999"} {
			_, err := todoswamp.ParseRequest(line)
			require.Error(t, err, line)
			assert.Equal(t, todoswamp.ENOTFOUND, todoswamp.ErrorCode(err), line)
		}
		_, err := todoswamp.ParseRequest("done 99999999999999999999")
		assert.Equal(t, "item 99999999999999999999 does not exist", todoswamp.ErrorMessage(err))
	})

	t.Run("rejects missing, extra or non-numeric ids", func(t *testing.T) {
		t.Parallel()

		for _, line := range []string{"done", "done 1 2", "done x"} {
			_, err := todoswamp.ParseRequest(line)
			require.Error(t, err, line)
			assert.Equal(t, todoswamp.EINVALID, todoswamp.ErrorCode(err), line)
		}
	})
}

func TestParseRequest_Search(t *testing.T) {
	t.Parallel()

	t.Run("splits words and tags preserving order", func(t *testing.T) {
		t.Parallel()

		req, err := todoswamp.ParseRequest("search hlo #tag3 good")
		require.NoError(t, err)

		assert.Equal(t, &todoswamp.SearchRequest{Query: todoswamp.Query{
			Words: []string{"hlo", "good"},
			Tags:  []string{"tag3"},
		}}, req)
	})

	t.Run("accepts search without terms", func(t *testing.T) {
		t.Parallel()

		req, err := todoswamp.ParseRequest("search")
		require.NoError(t, err)

		search := req.(*todoswamp.SearchRequest)
		assert.True(t, search.Query.IsEmpty())
	})

	t.Run("rejects bare hash", func(t *testing.T) {
		t.Parallel()

		_, err := todoswamp.ParseRequest("search #")
		assert.Equal(t, todoswamp.EINVALID, todoswamp.ErrorCode(err))
	})
}

func TestParseRequest_InvalidUTF8(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"add \"a\xfeb\"", "search \xff", "add \"ok\" #t\xe2\x82", "done 1\xff"} {
		_, err := todoswamp.ParseRequest(line)
		require.Error(t, err, line)
		assert.Equal(t, todoswamp.EINVALID, todoswamp.ErrorCode(err), line)
	}
}

func TestParseRequest_Unknown(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"", "   ", "remove 1", "ADD \"x\""} {
		_, err := todoswamp.ParseRequest(line)
		require.Error(t, err, line)
		assert.Equal(t, todoswamp.EINVALID, todoswamp.ErrorCode(err), line)
	}
}
