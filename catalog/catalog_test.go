package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const vehicleCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<OpenSCENARIO>
  <FileHeader author="test" revMajor="1" revMinor="3"/>
  <Catalog name="VehicleCatalog">
    <Vehicle name="car" vehicleCategory="car">
      <ParameterDeclarations>
        <ParameterDeclaration name="Speed" parameterType="double" value="10"/>
        <ParameterDeclaration name="Accel" parameterType="double" value="${Speed / 5}"/>
      </ParameterDeclarations>
      <Performance maxSpeed="$Speed" maxAcceleration="$Accel" maxDeceleration="9"/>
    </Vehicle>
    <Vehicle name="truck" vehicleCategory="truck">
      <Performance maxSpeed="25" maxAcceleration="1" maxDeceleration="5"/>
    </Vehicle>
  </Catalog>
</OpenSCENARIO>
`

const pedestrianCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<OpenSCENARIO>
  <FileHeader author="test" revMajor="1" revMinor="3"/>
  <Catalog name="PedestrianCatalog">
    <Pedestrian name="walker" pedestrianCategory="pedestrian" mass="80"/>
  </Catalog>
</OpenSCENARIO>
`

const controllerCatalogYAML = `fileHeader:
  author: test
catalog:
  name: ControllerCatalog
  entries:
    - Controller:
        name: driver
        parameterDeclarations:
          - name: Aggression
            parameterType: double
            value: "0.5"
`

// writeFiles creates files under a new temporary directory and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}
