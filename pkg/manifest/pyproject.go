package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ExtractPyprojectInfo renders the metadata block for a pyproject.toml
// file, recognizing Poetry, PEP 621 and Flit layouts in that order. A
// file that parses but matches none of them yields a placeholder block;
// a file that fails to parse yields nothing so detection keeps probing.
func ExtractPyprojectInfo(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var doc map[string]interface{}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return "", false
	}

	tool, _ := doc["tool"].(map[string]interface{})

	if poetry, ok := tool["poetry"].(map[string]interface{}); ok {
		return poetryInfo(poetry), true
	}
	if project, ok := doc["project"].(map[string]interface{}); ok {
		return pep621Info(project), true
	}
	if flit, ok := tool["flit"].(map[string]interface{}); ok {
		if metadata, ok := flit["metadata"].(map[string]interface{}); ok {
			return flitInfo(metadata), true
		}
	}

	var info strings.Builder
	info.WriteString("Project Type: Python (pyproject.toml format not recognized)\n")
	info.WriteString("A pyproject.toml file was found but its format couldn't be parsed.\n")
	return info.String(), true
}

func poetryInfo(poetry map[string]interface{}) string {
	var info strings.Builder
	info.WriteString("Project Type: Python (Poetry)\n")

	writeStringField(&info, "Project Name", poetry["name"])
	writeStringField(&info, "Version", poetry["version"])
	writeStringField(&info, "Description", poetry["description"])

	if deps, ok := poetry["dependencies"].(map[string]interface{}); ok {
		info.WriteString("\nDependencies:\n")
		for _, name := range sortedKeys(deps) {
			if name == "python" {
				// interpreter constraint, not a package
				continue
			}
			writePoetryDependency(&info, name, deps[name])
		}
	}

	if devDeps, ok := poetry["dev-dependencies"].(map[string]interface{}); ok {
		info.WriteString("\nDev Dependencies:\n")
		for _, name := range sortedKeys(devDeps) {
			writePoetryDependency(&info, name, devDeps[name])
		}
	}

	return info.String()
}

// writePoetryDependency lists a dependency with its version when the
// constraint is a plain string, bare otherwise (table constraints, lists).
func writePoetryDependency(info *strings.Builder, name string, value interface{}) {
	if version, ok := value.(string); ok {
		fmt.Fprintf(info, "- %s = \"%s\"\n", name, version)
	} else {
		fmt.Fprintf(info, "- %s\n", name)
	}
}

func pep621Info(project map[string]interface{}) string {
	var info strings.Builder
	info.WriteString("Project Type: Python (PEP 621)\n")

	writeStringField(&info, "Project Name", project["name"])
	writeStringField(&info, "Version", project["version"])
	writeStringField(&info, "Description", project["description"])

	if deps, ok := project["dependencies"].([]interface{}); ok {
		info.WriteString("\nDependencies:\n")
		writeDependencyList(&info, deps, "- ")
	}

	if optional, ok := project["optional-dependencies"].(map[string]interface{}); ok {
		info.WriteString("\nOptional Dependencies:\n")
		writeDependencyGroups(&info, optional)
	}

	return info.String()
}

func flitInfo(metadata map[string]interface{}) string {
	var info strings.Builder
	info.WriteString("Project Type: Python (Flit)\n")

	writeStringField(&info, "Project Name", metadata["module"])
	writeStringField(&info, "Description", metadata["description"])

	if requires, ok := metadata["requires"].([]interface{}); ok {
		info.WriteString("\nDependencies:\n")
		writeDependencyList(&info, requires, "- ")
	}

	if extras, ok := metadata["requires-extra"].(map[string]interface{}); ok {
		info.WriteString("\nOptional Dependencies:\n")
		writeDependencyGroups(&info, extras)
	}

	return info.String()
}

// writeDependencyList renders string array entries in input order.
func writeDependencyList(info *strings.Builder, deps []interface{}, prefix string) {
	for _, value := range deps {
		if dep, ok := value.(string); ok {
			fmt.Fprintf(info, "%s%s\n", prefix, dep)
		}
	}
}

// writeDependencyGroups renders named dependency groups in sorted order.
func writeDependencyGroups(info *strings.Builder, groups map[string]interface{}) {
	for _, group := range sortedKeys(groups) {
		fmt.Fprintf(info, "Group '%s':\n", group)
		if deps, ok := groups[group].([]interface{}); ok {
			writeDependencyList(info, deps, "  - ")
		}
	}
}
