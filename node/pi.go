package node

type ProcessingInstruction struct {
	target string
	data   string
}

var _ Node = (*ProcessingInstruction)(nil)

func NewProcessingInstruction(target, data string) *ProcessingInstruction {
	return &ProcessingInstruction{
		target: target,
		data:   data,
	}
}

func (*ProcessingInstruction) Type() NodeType {
	return ProcessingInstructionNodeType
}

func (p *ProcessingInstruction) LocalName() string {
	return p.target
}

func (*ProcessingInstruction) node() {}

func (p *ProcessingInstruction) Target() string {
	return p.target
}

func (p *ProcessingInstruction) Data() string {
	return p.data
}
