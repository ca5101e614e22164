package crossref

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryTitle(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", (&Work{}).PrimaryTitle())
	assert.Equal("First", (&Work{Title: []string{"First", "Second"}}).PrimaryTitle())
}

func TestPublicationDate(t *testing.T) {
	for name, test := range map[string]struct {
		work string
		want string
	}{
		"issued wins over published-online": {
			work: `{"issued": {"date-parts": [[2018, 6, 1]]}, "published-online": {"date-parts": [[2017, 1, 2]]}}`,
			want: "2018-06-01",
		},
		"null component falls through to next field": {
			work: `{"issued": {"date-parts": [[2018, null, 1]]}, "published-online": {"date-parts": [[2017, 1, 2]]}}`,
			want: "2017-01-02",
		},
		"year only defaults month and day": {
			work: `{"accepted": {"date-parts": [[1995]]}}`,
			want: "1995-01-01",
		},
		"year and month default day": {
			work: `{"posted": {"date-parts": [[2003, 7]]}}`,
			want: "2003-07-01",
		},
		"empty rows yield nothing": {
			work: `{"issued": {"date-parts": []}, "posted": {"date-parts": [[]]}}`,
			want: "",
		},
		"no date fields at all": {
			work: `{"DOI": "10.1000/undated"}`,
			want: "",
		},
		"every candidate disqualified": {
			work: `{"issued": {"date-parts": [[null, 6, 1]]}, "published-print": {"date-parts": [[2001, null]]}}`,
			want: "",
		},
		"second row ignored": {
			work: `{"issued": {"date-parts": [[2010, 2, 3], [1999, 1, 1]]}}`,
			want: "2010-02-03",
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			var work Work
			require.NoError(json.Unmarshal([]byte(test.work), &work))

			date := work.PublicationDate()
			if test.want == "" {
				assert.Nil(date)
				return
			}
			require.NotNil(date)
			assert.Equal(test.want, date.Format("2006-01-02"))
		})
	}
}
