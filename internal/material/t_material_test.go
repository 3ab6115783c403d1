package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func TestMaterial01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material01. catalog lookup")

	m, err := ByName("structural_steel")
	if err != nil {
		tst.Errorf("ByName failed: %v\n", err)
		return
	}
	chk.Float64(tst, "yield", 1e-15, m.Yield, 250)
	chk.Float64(tst, "E", 1e-15, m.Elastic, 200000)
	chk.Float64(tst, "yield strain", 1e-12, m.YieldStrain(), 0.00125)

	m, err = ByName("  Aluminum_6061 ")
	if err != nil {
		tst.Errorf("ByName failed: %v\n", err)
		return
	}
	chk.Float64(tst, "yield", 1e-15, m.Yield, 275)
	chk.Float64(tst, "E", 1e-15, m.Elastic, 69000)

	if _, err := ByName("unobtainium"); err == nil {
		tst.Errorf("expected an unknown-material error\n")
	}

	chk.Strings(tst, "names", Names(), []string{"aluminum_6061", "carbon_fiber", "structural_steel"})
}

func TestMaterial02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material02. adequacy bands")

	chk.String(tst, Assess(2.5, 3.0), AdequacyInsufficient)
	chk.String(tst, Assess(2.5, 2.0), AdequacyAdequate)
	chk.String(tst, Assess(3.0, 3.0), AdequacyExcellent)
	chk.String(tst, Assess(5.0, 3.0), AdequacyExcellent)
	chk.String(tst, Assess(6.2, 3.0), AdequacyOverDesigned)
	chk.String(tst, Assess(25.5, 3.0), AdequacyOverDesigned)
}

func TestMaterial03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material03. duty cases amplify loads")

	f, err := FactorsFor("hoisting")
	if err != nil {
		tst.Errorf("FactorsFor failed: %v\n", err)
		return
	}
	chk.Float64(tst, "dynamic factor", 1e-15, f.DynamicFactor, 1.4)
	chk.Float64(tst, "amplified", 1e-12, f.Amplify(5000), 7000)
	chk.Float64(tst, "required SF", 1e-15, f.RequiredSF, 3.0)

	if _, err := FactorsFor("orbital"); err == nil {
		tst.Errorf("expected an unknown-duty error\n")
	}
}
