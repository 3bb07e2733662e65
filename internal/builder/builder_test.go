package builder

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solgen/internal/contract"
	"solgen/internal/errors"
)

func mustRender(t *testing.T, model Model, opts ...Option) string {
	t.Helper()
	source, err := Render(model, opts...)
	require.NoError(t, err)
	return source
}

func assertSource(t *testing.T, expected, actual string) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("rendered source mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyContract(t *testing.T) {
	c := contract.New("TestContract")

	assertSource(t, `pragma solidity ^0.8.9;

contract TestContract {
}
`, mustRender(t, c))
}

func TestHeaderOptions(t *testing.T) {
	c := contract.New("TestContract")

	source := mustRender(t, c, WithVersion("0.8.20"), WithLicense("MIT"))

	assertSource(t, `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.20;

contract TestContract {
}
`, source)
}

func TestParents(t *testing.T) {
	c := contract.New("TestContract")
	c.AddParent(contract.ParentContract{Name: "ParentContract1", Path: "path/to/parent/contract1.sol"})
	c.AddParent(contract.ParentContract{Name: "ParentContract2", Path: "path/to/parent/contract2.sol"})

	assertSource(t, `pragma solidity ^0.8.9;

import "path/to/parent/contract1.sol";
import "path/to/parent/contract2.sol";

contract TestContract is ParentContract1, ParentContract2 {
}
`, mustRender(t, c))
}

func TestParentsWithParams(t *testing.T) {
	c := contract.New("TestContract")
	c.AddParent(contract.ParentContract{Name: "ParentContract1", Path: "path/to/parent/contract1.sol"},
		contract.Number(15), contract.Number(30))
	c.AddParent(contract.ParentContract{Name: "ParentContract2", Path: "path/to/parent/contract2.sol"},
		contract.String("stringArg"))

	assertSource(t, `pragma solidity ^0.8.9;

import "path/to/parent/contract1.sol";
import "path/to/parent/contract2.sol";

contract TestContract is ParentContract1, ParentContract2 {
    constructor() ParentContract1(15, 30) ParentContract2("stringArg") {}
}
`, mustRender(t, c))
}

func TestInitializerParent(t *testing.T) {
	c := contract.New("TestContract")
	c.AddParent(contract.ParentContract{Name: "ERC20", Path: "erc20.sol"}, contract.String("Token"), contract.String("TKN"))
	c.AddParent(contract.ParentContract{Name: contract.InitializerName, Path: "init.sol"}, contract.Lit("ignored"))

	assertSource(t, `pragma solidity ^0.8.9;

import "init.sol";
import "erc20.sol";

contract TestContract is Initializable, ERC20 {
    constructor() ERC20("Token", "TKN") {}
}
`, mustRender(t, c))
}

func TestInitializerOnlyConstructor(t *testing.T) {
	c := contract.New("TestContract")
	c.AddParent(contract.ParentContract{Name: contract.InitializerName, Path: "init.sol"}, contract.Lit("x"))

	assert.Contains(t, mustRender(t, c), "    constructor() {}\n")
}

func TestUsing(t *testing.T) {
	c := contract.New("TestContract")
	c.AddUsing(contract.ParentContract{Name: "LibraryContract1", Path: "path/to/library/contract1.sol"}, "LibraryContract1.Type")
	c.AddUsing(contract.ParentContract{Name: "LibraryContract2", Path: "path/to/library/contract2.sol"}, "LibraryContract12.Type")

	assertSource(t, `pragma solidity ^0.8.9;

import "path/to/library/contract1.sol";
import "path/to/library/contract2.sol";

contract TestContract {
    using LibraryContract1 for LibraryContract1.Type;
    using LibraryContract2 for LibraryContract12.Type;
}
`, mustRender(t, c))
}

func TestConstructorWithArguments(t *testing.T) {
	c := contract.New("TestContract")
	c.AddConstructorArgument(contract.FunctionArgument{Type: "uint256", Name: "numberValue"})
	c.AddConstructorArgument(contract.FunctionArgument{Type: "bool", Name: "isBool"})
	c.AddConstructorCode("uint256 value = numberValue;")

	assertSource(t, `pragma solidity ^0.8.9;

contract TestContract {
    constructor(uint256 numberValue, bool isBool) {
        uint256 value = numberValue;
    }
}
`, mustRender(t, c))
}

func TestConstructorArgumentsWithoutCode(t *testing.T) {
	c := contract.New("TestContract")
	c.AddConstructorArgument(contract.FunctionArgument{Type: "uint256", Name: "numberValue"})

	assert.NotContains(t, mustRender(t, c), "constructor")
}

func TestDeclarations(t *testing.T) {
	c := contract.New("TestContract")
	c.AddVariable("uint256 public totalSupply;")
	c.AddEnumeration(contract.Enum{Name: "Stage", Options: []string{"NONE", "PENDING"}})
	c.AddStruct(contract.Struct{Name: "User", Fields: []contract.FunctionArgument{
		{Type: "string", Name: "name"},
		{Type: "uint8", Name: "age"},
	}})
	c.AddEvent(contract.Event{Name: "Transfer", Properties: []contract.EventProperty{
		{FunctionArgument: contract.FunctionArgument{Type: "address", Name: "from"}, Indexed: true},
		{FunctionArgument: contract.FunctionArgument{Type: "uint256", Name: "amount"}},
	}})

	assertSource(t, `pragma solidity ^0.8.9;

contract TestContract {
    uint256 public totalSupply;
    enum Stage { NONE, PENDING }
    struct User {
        string name;
        uint8 age;
    }
    event Transfer(address indexed from, uint256 amount);
}
`, mustRender(t, c))
}

func TestModifierFunction(t *testing.T) {
	c := contract.New("TestContract")
	isBigger := contract.BaseModifier{Name: "isBigger", Args: []contract.FunctionArgument{
		{Type: "uint256", Name: "a"},
		{Type: "uint256", Name: "b"},
	}}
	require.NoError(t, c.SetModifierCode([]string{`require(a > b, "b less than a");`, "_;"}, isBigger))

	assertSource(t, `pragma solidity ^0.8.9;

contract TestContract {
    modifier isBigger(uint256 a, uint256 b){
        require(a > b, "b less than a");
        _;
    }
}
`, mustRender(t, c))
}

func TestFullContract(t *testing.T) {
	c := contract.New("TestContract")
	c.AddParent(contract.ParentContract{Name: "Contract", Path: "contracts/Contract.sol"})
	c.AddUsing(contract.ParentContract{Name: "Library", Path: "libs/Lib.sol"}, "Library.Data")
	c.AddVariable("uint256 totalAmount;")
	c.AddVariable("bool blocked;")
	c.AddVariable("address owner;")
	c.AddConstructorArgument(contract.FunctionArgument{Type: "uint256", Name: "uintValue"})
	c.AddConstructorArgument(contract.FunctionArgument{Type: "bool", Name: "blocked"})
	c.AddConstructorCode("this.totalAmount = uintValue * 100;")
	c.AddConstructorCode("this.blocked = blocked;")
	c.AddConstructorCode("this.owner = msg.sender;")
	require.NoError(t, c.AddModifierCode("_;", contract.BaseModifier{Name: "onlyOwner"}))

	isBlocked := contract.BaseFunction{
		Name:       "isBlocked",
		Returns:    []string{"bool"},
		Kind:       contract.Public,
		Mutability: contract.View,
	}
	require.NoError(t, c.AddFunctionCode("return this.blocked;", isBlocked))

	updateOwner := contract.BaseFunction{
		Name:    "updateOwner",
		Args:    []contract.FunctionArgument{{Type: "address", Name: "newOwner"}},
		Returns: []string{"address"},
		Kind:    contract.Public,
	}
	require.NoError(t, c.AddModifier("onlyOwner", updateOwner))
	require.NoError(t, c.AddFunctionCode("this.owner = newOwner;", updateOwner))
	require.NoError(t, c.AddFunctionCode("return this.owner;", updateOwner))

	assertSource(t, `pragma solidity ^0.8.9;

import "contracts/Contract.sol";
import "libs/Lib.sol";

contract TestContract is Contract {
    using Library for Library.Data;

    uint256 totalAmount;
    bool blocked;
    address owner;

    constructor(uint256 uintValue, bool blocked) {
        this.totalAmount = uintValue * 100;
        this.blocked = blocked;
        this.owner = msg.sender;
    }

    modifier onlyOwner(){
        _;
    }

    function isBlocked() public view returns (bool) {
        return this.blocked;
    }

    function updateOwner(address newOwner) public onlyOwner returns (address) {
        this.owner = newOwner;
        return this.owner;
    }
}
`, mustRender(t, c))
}

func TestEndToEnd(t *testing.T) {
	c := contract.New("my token")
	c.AddParent(contract.ParentContract{Name: "ERC20", Path: "@openzeppelin/contracts/token/ERC20/ERC20.sol"},
		contract.String("MyToken"), contract.String("MTK"))

	onlyOwner := contract.BaseModifier{Name: "onlyOwner"}
	require.NoError(t, c.AddModifierCode("require(msg.sender == owner);", onlyOwner))
	require.NoError(t, c.AddModifierCode("_;", onlyOwner))

	balanceOf := contract.BaseFunction{
		Name:       "balanceOf",
		Args:       []contract.FunctionArgument{{Type: "address", Name: "account"}},
		Returns:    []string{"uint256"},
		Kind:       contract.Public,
		Mutability: contract.Pure,
	}
	require.NoError(t, c.AddFunctionCode("require(account != address(0));", balanceOf))
	require.NoError(t, c.AddOverride("ERC20", balanceOf, contract.View))

	assertSource(t, `pragma solidity ^0.8.9;

import "@openzeppelin/contracts/token/ERC20/ERC20.sol";

contract MyToken is ERC20 {
    constructor() ERC20("MyToken", "MTK") {}

    modifier onlyOwner(){
        require(msg.sender == owner);
        _;
    }

    function balanceOf(address account) public view override returns (uint256) {
        require(account != address(0));
        return super.balanceOf(account);
    }
}
`, mustRender(t, c))
}

func TestRenderIsIdempotent(t *testing.T) {
	c := contract.New("TestContract")
	c.AddParent(contract.ParentContract{Name: "ERC20", Path: "erc20.sol"}, contract.String("A"), contract.Number(18))
	fn := contract.BaseFunction{Name: "decimals", Returns: []string{"uint8"}, Kind: contract.Public}
	require.NoError(t, c.AddOverride("ERC20", fn, contract.Pure))
	require.NoError(t, c.AddOverride("ERC20Decimals", fn))

	b := New(c)
	first, err := b.Source()
	require.NoError(t, err)
	second, err := b.Source()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, c.Functions()[0].Code, 0, "rendering must not touch the model")
}

func TestRenderError(t *testing.T) {
	c := contract.New("TestContract")
	c.AddParent(contract.ParentContract{Name: "A", Path: "a.sol"}, contract.Number(0.5))

	_, err := Render(c)
	var genErr *errors.GenerationError
	require.True(t, stderrors.As(err, &genErr))
	assert.Equal(t, errors.ErrorUnrepresentableValue, genErr.Code)

	c = contract.New("TestContract")
	c.AddParent(contract.ParentContract{Name: "A", Path: "a.sol"}, nil)

	_, err = Render(c)
	require.True(t, stderrors.As(err, &genErr))
	assert.Equal(t, errors.ErrorUnknownValue, genErr.Code)
}
