package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeScriptChecker_HasErrors(t *testing.T) {
	checker := NewTypeScriptChecker()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{
			name: "valid handler",
			src: `export async function GET(request: Request, { params }: { params: Promise<{ id: string }> }) {
  const { id } = await params
  return Response.json({ id })
}
`,
			want: false,
		},
		{
			name: "statement outside body",
			src: `export async function GET(request: Request) {
  return null
}
  const { id } = await params
}
`,
			want: true,
		},
		{
			name: "unterminated body",
			src:  "export async function GET(request: Request) {\n  return (\n",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checker.HasErrors([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
