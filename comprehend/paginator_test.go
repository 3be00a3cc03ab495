package comprehend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pricofy/comprehend-go/model"
)

func TestPaginatorFollowsTokens(t *testing.T) {
	f, client := newFake(t)
	f.on("ListSentimentDetectionJobs", 200, `{"SentimentDetectionJobPropertiesList":[{"JobId":"1"},{"JobId":"2"}],"NextToken":"t1"}`)
	f.on("ListSentimentDetectionJobs", 200, `{"SentimentDetectionJobPropertiesList":[{"JobId":"3"}],"NextToken":"t2"}`)
	f.on("ListSentimentDetectionJobs", 200, `{"SentimentDetectionJobPropertiesList":[{"JobId":"4"}]}`)

	p := NewListSentimentDetectionJobsPaginator(client, new(model.ListSentimentDetectionJobsRequest).SetMaxResults(2))

	var ids []string
	for p.HasMorePages() {
		page, err := p.NextPage(context.Background())
		require.NoError(t, err)
		for _, job := range page.SentimentDetectionJobPropertiesList {
			ids = append(ids, job.GetJobId())
		}
	}
	require.Equal(t, []string{"1", "2", "3", "4"}, ids)

	calls := f.calls()
	require.Len(t, calls, 3)
	require.NotContains(t, calls[0].Body, "NextToken")
	require.Equal(t, "t1", calls[1].Body["NextToken"])
	require.Equal(t, "t2", calls[2].Body["NextToken"])
	for _, c := range calls {
		require.EqualValues(t, 2, c.Body["MaxResults"])
	}

	_, err := p.NextPage(context.Background())
	require.ErrorIs(t, err, ErrNoMorePages)
}

func TestPaginatorCopiesRequest(t *testing.T) {
	f, client := newFake(t)
	f.on("ListSentimentDetectionJobs", 200, `{"NextToken":"t1"}`)
	f.on("ListSentimentDetectionJobs", 200, `{}`)

	in := new(model.ListSentimentDetectionJobsRequest).SetMaxResults(2)
	p := NewListSentimentDetectionJobsPaginator(client, in)

	_, err := p.NextPage(context.Background())
	require.NoError(t, err)
	in.SetMaxResults(50)
	in.SetNextToken("caller")
	_, err = p.NextPage(context.Background())
	require.NoError(t, err)

	calls := f.calls()
	require.Len(t, calls, 2)
	require.EqualValues(t, 2, calls[1].Body["MaxResults"])
	require.Equal(t, "t1", calls[1].Body["NextToken"])
}

func TestPaginatorStopsOnRepeatedToken(t *testing.T) {
	f, client := newFake(t)
	f.on("ListFlywheels", 200, `{"NextToken":"same"}`)

	p := NewListFlywheelsPaginator(client, new(model.ListFlywheelsRequest).SetNextToken("same"))
	_, err := p.NextPage(context.Background())
	require.NoError(t, err)
	require.False(t, p.HasMorePages())
}

func TestPaginatorStopsOnEmptyToken(t *testing.T) {
	f, client := newFake(t)
	f.on("ListEntityRecognizers", 200, `{"NextToken":""}`)

	p := NewListEntityRecognizersPaginator(client, nil)
	_, err := p.NextPage(context.Background())
	require.NoError(t, err)
	require.False(t, p.HasMorePages())
}

func TestPaginatorSurfacesErrors(t *testing.T) {
	fetchErr := errors.New("boom")
	p := newPaginator(nil, func(context.Context, *string) (*model.ListFlywheelsResult, *string, error) {
		return nil, nil, fetchErr
	})

	_, err := p.NextPage(context.Background())
	require.ErrorIs(t, err, fetchErr)
	require.True(t, p.HasMorePages())
}
