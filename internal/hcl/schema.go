package hcl

// fileRoot is the top-level structure of a manifest file.
type fileRoot struct {
	Tables []*tableBlock `hcl:"table,block"`
}

// tableBlock is a `table "<kind>" "<name>"` block.
type tableBlock struct {
	Kind    string   `hcl:"kind,label"`
	Name    string   `hcl:"name,label"`
	Inputs  []string `hcl:"inputs"`
	Output  string   `hcl:"output"`
	Package string   `hcl:"package,optional"`
	Symbol  string   `hcl:"symbol,optional"`
	Range   *int     `hcl:"range,optional"`
}
