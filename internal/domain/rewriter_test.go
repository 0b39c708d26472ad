package domain_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/paramfix/internal/adapter/mocks"
	"github.com/mouse-blink/paramfix/internal/debug"
	"github.com/mouse-blink/paramfix/internal/domain"
	m "github.com/mouse-blink/paramfix/internal/model"
)

const handlerSource = `export async function GET(request: Request, { params }: { params: Promise<{ id: string }> }) {
  return Response.json({ id: params.id })
}
`

const handlerFixed = `export async function GET(request: Request, { params }: { params: Promise<{ id: string }> }) {
  const { id } = await params
  return Response.json({ id: id })
}
`

func TestRewriter_Rewrite_Changes(t *testing.T) {
	rw := domain.NewRewriter(nil)

	res, err := rw.Rewrite("route.ts", []byte(handlerSource), domain.RewriteOptions{})

	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 1, res.Rewrites)
	assert.Equal(t, handlerFixed, string(res.Content))
}

func TestRewriter_Rewrite_NoSignature(t *testing.T) {
	rw := domain.NewRewriter(nil)
	src := "export const dynamic = 'force-dynamic'\n"

	res, err := rw.Rewrite("route.ts", []byte(src), domain.RewriteOptions{})

	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Zero(t, res.Rewrites)
	assert.Equal(t, src, string(res.Content))
}

func TestRewriter_Rewrite_CustomIndent(t *testing.T) {
	rw := domain.NewRewriter(nil)
	src := "export async function GET(req, { params }: { params: Promise<{ id: string }> }) {\n}\n"

	res, err := rw.Rewrite("route.ts", []byte(src), domain.RewriteOptions{Indent: "\t"})

	require.NoError(t, err)
	assert.Contains(t, string(res.Content), "\n\tconst { id } = await params\n")
}

func TestRewriter_Rewrite_VerifyPasses(t *testing.T) {
	checker := adaptermocks.NewMockSyntaxChecker(t)
	checker.EXPECT().HasErrors([]byte(handlerSource)).Return(false, nil)
	checker.EXPECT().HasErrors([]byte(handlerFixed)).Return(false, nil)

	rw := domain.NewRewriter(checker)

	res, err := rw.Rewrite("route.ts", []byte(handlerSource), domain.RewriteOptions{Verify: true})

	require.NoError(t, err)
	assert.True(t, res.Changed)
}

func TestRewriter_Rewrite_VerifyRegression(t *testing.T) {
	checker := adaptermocks.NewMockSyntaxChecker(t)
	checker.EXPECT().HasErrors([]byte(handlerSource)).Return(false, nil)
	checker.EXPECT().HasErrors([]byte(handlerFixed)).Return(true, nil)

	rw := domain.NewRewriter(checker)

	res, err := rw.Rewrite("route.ts", []byte(handlerSource), domain.RewriteOptions{Verify: true})

	require.ErrorIs(t, err, domain.ErrSyntaxRegression)
	assert.False(t, res.Changed)
	assert.Equal(t, handlerSource, string(res.Content))
}

func TestRewriter_Rewrite_VerifyToleratesExistingErrors(t *testing.T) {
	checker := adaptermocks.NewMockSyntaxChecker(t)
	checker.EXPECT().HasErrors(mock.Anything).Return(true, nil).Twice()

	rw := domain.NewRewriter(checker)

	res, err := rw.Rewrite("route.ts", []byte(handlerSource), domain.RewriteOptions{Verify: true})

	require.NoError(t, err)
	assert.True(t, res.Changed)
}

func TestRewriter_Rewrite_VerifyParserFailure(t *testing.T) {
	checker := adaptermocks.NewMockSyntaxChecker(t)
	boom := errors.New("parser unavailable")
	checker.EXPECT().HasErrors(mock.Anything).Return(false, boom).Once()

	rw := domain.NewRewriter(checker)

	_, err := rw.Rewrite("route.ts", []byte(handlerSource), domain.RewriteOptions{Verify: true})

	require.ErrorIs(t, err, boom)
}

func TestRewriter_Rewrite_SkipsVerifyWhenUnchanged(t *testing.T) {
	checker := adaptermocks.NewMockSyntaxChecker(t)

	rw := domain.NewRewriter(checker)

	res, err := rw.Rewrite("route.ts", []byte(handlerFixed), domain.RewriteOptions{Verify: true})

	require.NoError(t, err)
	assert.False(t, res.Changed)
	checker.AssertNotCalled(t, "HasErrors", mock.Anything)
}

func TestRewriter_Rewrite_ReportsWarnings(t *testing.T) {
	rw := domain.NewRewriter(nil)
	src := "export async function GET(req, { params }: { params: Promise<{}> }) {\n  return null\n}\n"

	res, err := rw.Rewrite(m.Path("route.ts"), []byte(src), domain.RewriteOptions{})

	require.NoError(t, err)
	assert.False(t, res.Changed)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 1, res.Warnings[0].Line)
}

func TestRewriter_Rewrite_LogsOutcomesWhenVerbose(t *testing.T) {
	t.Cleanup(func() { debug.Init(nil, false) })

	var buf bytes.Buffer

	rw := domain.NewRewriter(nil)

	_, err := rw.Rewrite("route.ts", []byte(handlerSource), domain.RewriteOptions{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	debug.Init(&buf, true)

	_, err = rw.Rewrite("route.ts", []byte(handlerSource), domain.RewriteOptions{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "outcome=rewritten")
	assert.Contains(t, buf.String(), "path=route.ts")
}
