package internal

type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

func newInstance(class *loxClass) *loxInstance {
	return &loxInstance{
		class:  class,
		fields: make(map[string]interface{}),
	}
}

// get reads a field, falling back to a method bound to o.
func (o *loxInstance) get(state *interpreterState, tk *Token) interface{} {
	if val, ok := o.fields[tk.Lexeme]; ok {
		return val
	}
	if method := o.class.findMethod(tk.Lexeme); method != nil {
		return method.bind(o)
	}
	state.runtimeErr(errorf(errUndefinedProp, "Undefined property '%s'.", tk.Lexeme), tk)
	return nil
}

func (o *loxInstance) set(name *Token, value interface{}) {
	o.fields[name.Lexeme] = value
}

func (o *loxInstance) String() string {
	return o.class.name + " instance"
}
