package layout

import (
	"path"
)

// Overwrite is a file, relative to the project root, whose content is replaced after the
// layout has been materialized.
type Overwrite struct {
	Path    string
	Content string
}

const readme = "# Lucid Engine\n\nSource-available game engine. See LICENSE.md for terms.\n\n" +
	"## Setup\ncargo build --workspace\ncmake ..\n"

const license = "Lucid Engine License\n\nSource-available: Use per EULA. Royalties apply post $1M revenue.\n" +
	"SDK portions MIT."

const stackBuilder = "#!/usr/bin/env python3\n\nimport os\n\n# Auto-generate build configs\n" +
	"print('Building Lucid stacks...')\n# TODO: Implement\n"

const gitignore = "# Builds\nbuilds/\ntarget/\n\n# Content temps\nContent/*.tmp\n\n" +
	"# IDE\n.vscode/\n.idea/\n\n# Logs\nTelemetry/*.log\n"

// Overwrites returns the files written unconditionally at the end of a scaffold, in write order.
func Overwrites() []Overwrite {
	return []Overwrite{
		{Path: path.Join("lucid-engine", "README.md"), Content: readme},
		{Path: path.Join("lucid-engine", "LICENSE.md"), Content: license},
		{Path: path.Join("lucid-engine", "build", "lucid-stack-builder.py"), Content: stackBuilder},
		{Path: ".gitignore", Content: gitignore},
	}
}

// SuccessHint is printed after a successful scaffold.
const SuccessHint = "Next: cd lucid-engine; cargo build --workspace && cmake -B build"
