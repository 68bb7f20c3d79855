package pending

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/core"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func async[T any](ctx context.Context, r rop.Result[T]) *Pending[T] {
	return Go(ctx, func(context.Context) (rop.Result[T], error) {
		return r, nil
	})
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	res, err := Map(ctx, async(ctx, rop.Create(2)), func(_ context.Context, v int) (string, error) {
		return strconv.Itoa(v * 10), nil
	}).Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, rop.Create("20"), res)
}

func TestMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	var called atomic.Bool
	res, err := Map(ctx, From(rop.CreateWithError[int](rop.NotFound, "missing")),
		func(_ context.Context, v int) (string, error) {
			called.Store(true)
			return "", nil
		}).Await(ctx)

	require.NoError(t, err)
	assert.False(t, called.Load())
	assert.Equal(t, rop.NotFound, res.Status())
	assert.Equal(t, []string{"missing"}, res.Messages())
}

func TestMap_ErrorIsNotAStatus(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	boom := errors.New("boom")

	p := Map(ctx, From(rop.Create(1)), func(_ context.Context, v int) (int, error) {
		return 0, boom
	})

	var called atomic.Bool
	next := Map(ctx, p, func(_ context.Context, v int) (int, error) {
		called.Store(true)
		return v, nil
	})

	_, err := next.Await(ctx)
	assert.ErrorIs(t, err, boom)
	assert.False(t, called.Load())
}

func TestMap_PanicBecomesError(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	_, err := Map(ctx, From(rop.Create(1)), func(_ context.Context, v int) (int, error) {
		panic("mapper exploded")
	}).Await(ctx)

	var pErr *rop.PanicError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "mapper exploded", pErr.Value)
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	res, err := Switch(ctx, async(ctx, rop.Create(3)), func(_ context.Context, v int) (rop.Result[int], error) {
		return rop.CreateWithError[int](rop.Conflict, "taken"), nil
	}).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, rop.CreateWithError[int](rop.Conflict, "taken"), res)

	var called atomic.Bool
	res, err = Switch(ctx, From(rop.CreateWithError[int](rop.OperationFailed, "x")), func(_ context.Context, v int) (rop.Result[int], error) {
		called.Store(true)
		return rop.Create(v), nil
	}).Await(ctx)
	require.NoError(t, err)
	assert.False(t, called.Load())
	assert.Equal(t, rop.OperationFailed, res.Status())
}

func TestSwitch_WaitsForInput(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	release := make(chan struct{})
	var inputDone, stepStartedEarly atomic.Bool

	input := Go(ctx, func(context.Context) (rop.Result[int], error) {
		<-release
		inputDone.Store(true)
		return rop.Create(1), nil
	})
	out := Switch(ctx, input, func(_ context.Context, v int) (rop.Result[int], error) {
		if !inputDone.Load() {
			stepStartedEarly.Store(true)
		}
		return rop.Create(v + 1), nil
	})

	time.Sleep(10 * time.Millisecond)
	close(release)

	res, err := out.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Data())
	assert.False(t, stepStartedEarly.Load())
}

func TestCatch(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	boom := errors.New("boom")

	res, err := Catch(ctx, Reject[int](boom), func(_ context.Context, err error) rop.Result[int] {
		return rop.CreateWithError[int](rop.OperationFailed, err.Error())
	}).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, rop.CreateWithError[int](rop.OperationFailed, "boom"), res)
}

func TestCatch_LeavesFailureStatusAlone(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	var called atomic.Bool
	failed := rop.CreateWithError[int](rop.NotFound, "missing")
	res, err := Catch(ctx, async(ctx, failed), func(_ context.Context, err error) rop.Result[int] {
		called.Store(true)
		return rop.Create(0)
	}).Await(ctx)

	require.NoError(t, err)
	assert.False(t, called.Load())
	assert.Equal(t, failed, res)
}

func TestCatch_Panic(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	p := Switch(ctx, From(rop.Create(1)), func(_ context.Context, v int) (rop.Result[int], error) {
		var m map[string]int
		m["x"] = v
		return rop.Create(v), nil
	})

	res, err := Catch(ctx, p, func(_ context.Context, err error) rop.Result[int] {
		var pErr *rop.PanicError
		if errors.As(err, &pErr) {
			return rop.CreateWithError[int](rop.OperationFailed, "recovered")
		}
		return rop.CreateWithError[int](rop.OperationFailed, "other")
	}).Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"recovered"}, res.Messages())
}

func TestAsValidData(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	v, err := AsValidData(ctx, async(ctx, rop.Create("x")))
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	p := Validate(ctx, From(rop.CreateWithError[int](rop.InvalidArgument, "Test message")),
		func(context.Context, int) (bool, error) { return false, nil },
		rop.InvalidArgument, "Second message", false)
	_, err = AsValidData(ctx, p)
	require.Error(t, err)
	assert.Equal(t, "Validation failed with status InvalidArgument. Test message. Second message.", err.Error())

	boom := errors.New("boom")
	_, err = AsValidData(ctx, Reject[int](boom))
	assert.ErrorIs(t, err, boom)
}

func TestAwait_ContextCanceled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	p := Go(context.Background(), func(context.Context) (rop.Result[int], error) {
		<-release
		return rop.Create(1), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapList_PreservesOrder(t *testing.T) {
	t.Parallel()
	ctx := core.WithWorkerOptions(testContext(t), 4)

	items := []int{5, 1, 4, 2, 3}
	res, err := MapList(ctx, From(rop.Create(items)), func(_ context.Context, v int) (string, error) {
		time.Sleep(time.Duration(v) * time.Millisecond)
		return strconv.Itoa(v), nil
	}).Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1", "4", "2", "3"}, res.Data())
}

func TestMapList_SequentialByDefault(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	var running, maxRunning atomic.Int32
	_, err := MapList(ctx, From(rop.Create([]int{1, 2, 3})), func(_ context.Context, v int) (int, error) {
		n := running.Add(1)
		if n > maxRunning.Load() {
			maxRunning.Store(n)
		}
		time.Sleep(time.Millisecond)
		running.Add(-1)
		return v, nil
	}).Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, int32(1), maxRunning.Load())
}

func TestMapList_ErrorAndFailure(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)
	boom := errors.New("boom")

	_, err := MapList(ctx, From(rop.Create([]int{1, 2})), func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	}).Await(ctx)
	assert.ErrorIs(t, err, boom)

	var called atomic.Bool
	res, err := MapList(ctx, From(rop.CreateWithError[[]int](rop.NotFound, "none")), func(_ context.Context, v int) (int, error) {
		called.Store(true)
		return v, nil
	}).Await(ctx)
	require.NoError(t, err)
	assert.False(t, called.Load())
	assert.Equal(t, rop.NotFound, res.Status())
}

func TestItems(t *testing.T) {
	t.Parallel()
	ctx := testContext(t)

	res, err := ToItems(ctx, async(ctx, rop.Create([]int{1, 2})), func(_ context.Context, items []int) (rop.Items[int], error) {
		return rop.CreateItems(items, 10), nil
	}).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Metadata().Count)
	assert.Equal(t, 10, *res.Metadata().Total)

	var called atomic.Bool
	failed, err := ToItems(ctx, From(rop.CreateWithError[[]int](rop.Conflict, "busy")), func(_ context.Context, items []int) (rop.Items[int], error) {
		called.Store(true)
		return rop.CreateItems(items, 0), nil
	}).Await(ctx)
	require.NoError(t, err)
	assert.False(t, called.Load())
	assert.Equal(t, rop.Conflict, failed.Status())
	assert.Nil(t, failed.Metadata())

	data, err := AsValidItems(ctx, AsItems(ctx, From(rop.Create([]string{"a"}))))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, data)
}
