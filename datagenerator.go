package sedml

// DataGenerator post-processes task results with a math expression over its
// variables and parameters.
type DataGenerator struct {
	elementBase
	calculation
}

func NewDataGenerator(ns Namespaces) *DataGenerator {
	g := &DataGenerator{}
	g.elementBase = newElementBase(g, ns)
	g.calculation = newCalculation(ns)
	connectToChild(g)
	return g
}

func (g *DataGenerator) TypeCode() TypeCode   { return TypeDataGenerator }
func (g *DataGenerator) ElementName() string  { return "dataGenerator" }
func (g *DataGenerator) copyElement() Element { return g.Clone() }

func (g *DataGenerator) Clone() *DataGenerator {
	c := *g
	c.elementBase = g.elementBase.clone(&c)
	c.calculation = g.calculation.clone()
	connectToChild(&c)
	return &c
}

func (g *DataGenerator) attributes() []attribute {
	return append(g.elementBase.attributes(), g.idAttr(true), g.nameAttr())
}

func (g *DataGenerator) children() []child {
	return append(g.elementBase.children(), g.calculation.children(g, true)...)
}
