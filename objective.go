package gurobi

/* Objective-related functions */

// SetObjective overwrites the objective coefficients positionally: coefs[i]
// becomes the coefficient of variable i. The constant is kept by the
// binding and added to every reported objective value.
func (model *Model) SetObjective(coefs []float64, constant float64) error {
	if err := model.setDblAttrArray(attrObj, coefs); err != nil {
		return err
	}
	model.objConstant = constant
	return nil
}

// ObjectiveCoefficient returns the objective coefficient of the variable.
func (model *Model) ObjectiveCoefficient(index int) (float64, error) {
	return model.dblAttrElement(attrObj, index)
}

// SetObjectiveCoefficient changes the objective coefficient of the
// variable.
func (model *Model) SetObjectiveCoefficient(index int, coef float64) error {
	return model.setDblAttrElement(attrObj, index, coef)
}

// ObjectiveConstant returns the constant term of the objective.
func (model *Model) ObjectiveConstant() float64 {
	return model.objConstant
}
