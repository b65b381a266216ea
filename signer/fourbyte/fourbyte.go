// Copyright 2019 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package fourbyte contains the 4byte database: a mapping from function
// selectors to the signatures they were derived from.
package fourbyte

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sunyihoo/abicodec/accounts/abi"
	"github.com/sunyihoo/abicodec/log"
)

//go:embed 4byte.json
var embeddedJSON []byte

// Database is a 4byte database with the possibility of maintaining an immutable
// set (embedded) into the process and a mutable set (loaded and written to file).
//
// Database 是一个 4byte 数据库，可以维护一个嵌入进程的不可变集合（embedded）
// 和一个可变集合（加载并写入文件）。
type Database struct {
	embedded   map[string]string // 嵌入进程的不可变签名集合
	custom     map[string]string // 可从文件加载或写入的可变签名集合
	customPath string            // 可变集合的存储路径
}

func newEmpty() *Database {
	return &Database{embedded: map[string]string{}, custom: map[string]string{}}
}

// New loads the standard signature database embedded in the package.
// New 加载包中嵌入的标准签名数据库。
func New() (*Database, error) {
	return NewWithFile("")
}

// NewWithFile loads both the standard signature database (embedded resource
// file) as well as a custom database. The latter will be used to write new
// values into when selectors are registered.
//
// NewWithFile 加载标准签名数据库（嵌入的资源文件）以及自定义数据库。后者将用于写入新注册的选择器。
func NewWithFile(path string) (*Database, error) {
	db := newEmpty()
	if err := json.Unmarshal(embeddedJSON, &db.embedded); err != nil {
		return nil, fmt.Errorf("corrupt embedded 4byte database: %v", err)
	}
	db.customPath = path
	if path == "" {
		return db, nil
	}
	// A missing file is an empty set, it is created on the first AddSelector.
	// 文件不存在时视为空集合，首次 AddSelector 时创建。
	blob, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return db, nil
	case err != nil:
		return nil, err
	}
	if err := json.Unmarshal(blob, &db.custom); err != nil {
		return nil, fmt.Errorf("invalid 4byte database %s: %v", path, err)
	}
	if db.custom == nil {
		db.custom = map[string]string{} // file held "null"
	}
	log.Debug("Loaded custom 4byte database", "path", path, "entries", len(db.custom))
	return db, nil
}

// Size returns the number of 4byte entries in the embedded and custom datasets.
// Size 返回嵌入和自定义数据集中 4byte 条目的数量。
func (db *Database) Size() (int, int) {
	return len(db.embedded), len(db.custom)
}

// Selector checks the given 4byte ID against the known signatures, embedded
// ones first. Only the first 4 bytes of id are used, so whole call data can be
// passed in.
//
// This method does not validate the match, it's assumed the caller will do.
//
// Selector 在已知签名中查找给定的 4byte ID，优先查找嵌入集合。此方法不对匹配进行验证。
func (db *Database) Selector(id []byte) (string, error) {
	if len(id) < abi.SelectorLength {
		return "", fmt.Errorf("expected 4-byte id, got %d", len(id))
	}
	key := hex.EncodeToString(id[:abi.SelectorLength])
	for _, set := range []map[string]string{db.embedded, db.custom} {
		if signature, ok := set[key]; ok {
			return signature, nil
		}
	}
	return "", fmt.Errorf("signature %v not found", key)
}

// AddSelector parses a signature and inserts it into the custom set, keyed by
// its computed selector. If custom database saving is enabled, the new dataset
// is also persisted to disk. Known selectors are left alone.
//
// AddSelector 解析签名并以其计算出的选择器为键插入自定义集合。如果启用了自定义数据库保存，新数据集也会持久化到磁盘。
func (db *Database) AddSelector(signature string) (string, error) {
	fn, err := parseSignature(signature)
	if err != nil {
		return "", err
	}
	if _, err := db.Selector(fn.ID); err == nil {
		return fn.Sig, nil
	}
	db.custom[hex.EncodeToString(fn.ID)] = fn.Sig
	log.Debug("Registered selector", "id", hex.EncodeToString(fn.ID), "signature", fn.Sig)
	return fn.Sig, db.save()
}

// save writes the custom set to its file, if one is configured.
func (db *Database) save() error {
	if db.customPath == "" {
		return nil
	}
	blob, err := json.MarshalIndent(db.custom, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(db.customPath, blob, 0600)
}
