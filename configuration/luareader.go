// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
//
// arguments are appended to the "arg" table after the file name
func ParseConfigurationFile(fileName string, config interface{}, arguments ...string) error {
	if !util.EnsureFileExists(fileName) {
		return fault.ErrNotFoundConfigFile
	}

	return parse(config, fileName, arguments, func(L *lua.LState) error {
		return L.DoFile(fileName)
	})
}

// ParseConfigurationString - execute Lua source held in memory and
// assign the results to a configuration structure
func ParseConfigurationString(source string, config interface{}) error {
	return parse(config, "", nil, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

// common setup and mapping
func parse(config interface{}, fileName string, arguments []string, execute func(*lua.LState) error) error {
	if !isStructPointer(config) {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.RawSetInt(0, lua.LString(fileName))
	for i, a := range arguments {
		arg.RawSetInt(i+1, lua.LString(a))
	}
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := execute(L); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigNotTable
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}

func isStructPointer(config interface{}) bool {
	v := reflect.ValueOf(config)
	return v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Kind() == reflect.Struct
}
