package servers_test

import (
	"testing"

	"mailroom/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_DocumentsEveryRoute(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	operations := map[string]string{}
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			operations[op.OperationID] = method + " " + path
		}
	}

	assert.Equal(t, "POST /mailrooms/{mailroomId}/packages", operations["RegisterPackage"])
	assert.Equal(t, "DELETE /mailrooms/{mailroomId}/package-numbers/{packageNumber}", operations["ReleasePackageNumber"])
	assert.Equal(t, "POST /mailrooms/{mailroomId}/packages/{packageId}/transition", operations["TransitionPackage"])
	assert.Equal(t, "POST /mailrooms/{mailroomId}/retire", operations["RetireMailroom"])
	assert.Len(t, operations, 18)
}
