package guard

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCachesVerdicts(t *testing.T) {
	classifier := NewMockClassifier()
	classifier.SetVerdict("recommend a thriller", &Verdict{Content: "delegate to agent"})
	service := NewService(classifier)

	ctx := context.Background()
	first, err := service.Check(ctx, "recommend a thriller")
	require.NoError(t, err)
	second, err := service.Check(ctx, "recommend a thriller")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, classifier.CallCount())
	assert.Equal(t, 1, service.Size())
}

func TestServiceKeysAreCaseSensitive(t *testing.T) {
	classifier := NewMockClassifier()
	service := NewService(classifier)

	ctx := context.Background()
	_, err := service.Check(ctx, "Hello")
	require.NoError(t, err)
	_, err = service.Check(ctx, "hello")
	require.NoError(t, err)

	assert.Equal(t, 2, classifier.CallCount())
	assert.Equal(t, 2, service.Size())
}

func TestServiceDoesNotCacheFailures(t *testing.T) {
	classifier := NewMockClassifier()
	classifier.SetError(errors.New("classifier unavailable"))
	service := NewService(classifier)

	ctx := context.Background()
	_, err := service.Check(ctx, "hello")
	require.Error(t, err)
	assert.Equal(t, 0, service.Size())

	// Once the classifier recovers, the query is classified and cached.
	classifier.SetError(nil)
	verdict, err := service.Check(ctx, "hello")
	require.NoError(t, err)
	assert.NotNil(t, verdict)
	assert.Equal(t, 1, service.Size())
}

func TestServiceSharesConcurrentPopulation(t *testing.T) {
	classifier := NewMockClassifier()
	service := NewService(classifier)

	const callers = 16
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Check(context.Background(), "same query")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, classifier.CallCount())
}
