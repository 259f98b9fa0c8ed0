// Package eggorm connects GraphQL to an ORM. (EGGORM might be an acronym for Easy Go GraphQL ORM.)

// It does 3 things:
//  - generates GraphQL fields and arguments from the attributes of an ORM model
//    (see AttributeFields, DefaultArgs and DefaultListArgs)
//  - converts the arguments a client sends into options for the ORM's find
//    (see ArgsToFindOptions and ReplaceWhereOperators)
//  - simplifies the AST of the selection a resolver is asked for into a tree of
//    requested fields and their arguments (see Simplify), which a resolver can use to
//    decide which columns to select and which relations to load

// A Model can be created from a Go struct, using "orm" tags for anything that can't be
// worked out from the field's name and type:

//type User struct {
//	ID     int    `orm:"id:INTEGER,pk"`
//	Name   string `orm:",null#The user's full name"`
//	Status string `orm:"status:ENUM(active,on hold)"`
//}
//
//func main() {
//	fmt.Println(eggorm.MustSchema(User{}))
//}

// which prints a schema with a "User" type (with a "UserstatusEnumType" enum) and queries
// "user(id: Int, where: JSON)" and "users(limit: Int, order: String, where: JSON, offset: Int)".

// In a resolver the requested fields are obtained from the resolver's context using the
// resolverinfo/gqlgen package (or from graphql-go's ResolveInfo with resolverinfo/graphqlgo)
// and the arguments become a SQL query using the sqlfind package.

package eggorm
