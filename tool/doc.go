// Package tool discovers tool definitions on disk and decodes them into
// [env.Spec] values.
//
// A tool named "maya" is defined by the first of maya.yaml, maya.yml,
// maya.json, or maya.hcl found in the directories of a [Loader]. YAML and
// JSON definitions are a single mapping from key to value, in order:
//
//	MAYA_VERSION: 2018
//	MAYA_LOCATION:
//	  windows: C:/Program Files/Autodesk/Maya{MAYA_VERSION}
//	  darwin: /Applications/Autodesk/maya{MAYA_VERSION}/Maya.app/Contents
//	  linux: /usr/autodesk/maya{MAYA_VERSION}
//	PATH:
//	  - "{MAYA_LOCATION}/bin"
//	  - "{PATH}"
//	"{MAYA_PROJECT_VAR}": project
//
// A value is a scalar (string, integer, or boolean), a list of scalars joined
// with the platform's path list separator, or a mapping from platform name
// to either of those. Dynamic keys must be quoted in YAML. So must decimal
// numbers: an unquoted 2.10 is rejected rather than read back as 2.1.
//
// HCL definitions hold the same values as top-level attributes:
//
//	MAYA_VERSION  = 2018
//	MAYA_LOCATION = { windows = "C:/Autodesk/Maya{MAYA_VERSION}" }
//	PATH          = ["{MAYA_LOCATION}/bin", "{PATH}"]
//
// HCL attribute names are identifiers, so dynamic keys are not available.
package tool
