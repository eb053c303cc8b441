package manifest

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ExtractCargoInfo renders the metadata block for a Cargo.toml file. The
// bool reports whether the file was read and parsed; a manifest without
// package or dependency tables still succeeds with an empty block.
func ExtractCargoInfo(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var doc map[string]interface{}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return "", false
	}

	var info strings.Builder

	if pkg, ok := doc["package"].(map[string]interface{}); ok {
		writeStringField(&info, "Project Name", pkg["name"])
		writeStringField(&info, "Version", pkg["version"])
		writeStringField(&info, "Description", pkg["description"])
	}

	writeCargoDependencies(&info, doc["dependencies"], "\nDependencies:\n")
	writeCargoDependencies(&info, doc["dev-dependencies"], "\nDev Dependencies:\n")

	return info.String(), true
}

// writeCargoDependencies renders one dependency table in sorted name
// order. String values and tables carrying a string "version" are listed
// with their version; anything else is listed bare.
func writeCargoDependencies(info *strings.Builder, deps interface{}, header string) {
	table, ok := deps.(map[string]interface{})
	if !ok {
		return
	}
	info.WriteString(header)

	for _, name := range sortedKeys(table) {
		switch value := table[name].(type) {
		case string:
			fmt.Fprintf(info, "- %s = \"%s\"\n", name, value)
		case map[string]interface{}:
			if version, ok := value["version"].(string); ok {
				fmt.Fprintf(info, "- %s = \"%s\"\n", name, version)
			} else {
				fmt.Fprintf(info, "- %s\n", name)
			}
		default:
			fmt.Fprintf(info, "- %s\n", name)
		}
	}
}

func writeStringField(info *strings.Builder, label string, value interface{}) {
	if s, ok := value.(string); ok {
		fmt.Fprintf(info, "%s: %s\n", label, s)
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
